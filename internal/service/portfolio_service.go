package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"nordstudio/internal/cache"
	apperrors "nordstudio/internal/errors"
	"nordstudio/internal/model"
	"nordstudio/internal/store"
)

const (
	portfolioCacheTTL = 5 * time.Minute
	portfolioListKey  = "portfolio:list"
)

// PortfolioInput carries the client-supplied fields of a create or
// replace-style update. Every mutation sends the full field set; omitted
// optional fields fall back to their defaults.
type PortfolioInput struct {
	Title       string           `json:"title" validate:"required,max=100"`
	Description string           `json:"description" validate:"max=1000"`
	Images      []string         `json:"images"`
	Client      string           `json:"client" validate:"max=100"`
	Year        string           `json:"year" validate:"omitempty,len=4,numeric"`
	Category    string           `json:"category" validate:"max=50"`
	GridItems   []model.GridItem `json:"gridItems" validate:"omitempty,dive"`
}

// PortfolioService handles portfolio CRUD against the document store.
type PortfolioService interface {
	List(ctx context.Context) ([]model.Portfolio, error)
	Get(ctx context.Context, id string) (*model.Portfolio, error)
	Create(ctx context.Context, input *PortfolioInput) (*model.Portfolio, error)
	Update(ctx context.Context, id string, input *PortfolioInput) (*model.Portfolio, error)
	Delete(ctx context.Context, id string) error
}

type portfolioService struct {
	store    store.Store
	cache    *cache.Client
	validate *validator.Validate
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(st store.Store, cacheClient *cache.Client) PortfolioService {
	return &portfolioService{
		store:    st,
		cache:    cacheClient,
		validate: validator.New(),
	}
}

func (s *portfolioService) cacheKey(id string) string {
	return fmt.Sprintf("portfolio:%s", id)
}

// List returns every portfolio record.
func (s *portfolioService) List(ctx context.Context) ([]model.Portfolio, error) {
	if data, _ := s.cache.Get(ctx, portfolioListKey); data != nil {
		var cached []model.Portfolio
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	docs, err := s.store.List(ctx, model.CollectionPortfolios)
	if err != nil {
		return nil, err
	}

	portfolios := make([]model.Portfolio, 0, len(docs))
	for _, doc := range docs {
		p, err := model.PortfolioFromFields(doc.ID, doc.Fields)
		if err != nil {
			return nil, fmt.Errorf("decode portfolio %s: %w", doc.ID, err)
		}
		portfolios = append(portfolios, p)
	}

	if payload, err := json.Marshal(portfolios); err == nil {
		_ = s.cache.Set(ctx, portfolioListKey, payload, portfolioCacheTTL)
	}
	return portfolios, nil
}

// Get returns one portfolio record by id.
func (s *portfolioService) Get(ctx context.Context, id string) (*model.Portfolio, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Portfolio
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	doc, found, err := s.store.Get(ctx, model.CollectionPortfolios, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrPortfolioNotFound
	}

	p, err := model.PortfolioFromFields(doc.ID, doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("decode portfolio %s: %w", id, err)
	}

	if payload, err := json.Marshal(p); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, portfolioCacheTTL)
	}
	return &p, nil
}

// Create validates the input, fills defaults, stamps both timestamps and
// stores a new record under a generated id.
func (s *portfolioService) Create(ctx context.Context, input *PortfolioInput) (*model.Portfolio, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := recordFromInput(input)
	p.CreatedAt = now
	p.UpdatedAt = now

	fields, err := p.Fields()
	if err != nil {
		return nil, fmt.Errorf("encode portfolio: %w", err)
	}

	id, err := s.store.Add(ctx, model.CollectionPortfolios, fields)
	if err != nil {
		return nil, err
	}
	p.ID = id

	s.invalidate(ctx, id)
	return &p, nil
}

// Update validates the input and replaces the record's fields, keeping
// the stored createdAt and refreshing updatedAt. Last write wins; there
// is no concurrent-edit detection.
func (s *portfolioService) Update(ctx context.Context, id string, input *PortfolioInput) (*model.Portfolio, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	doc, found, err := s.store.Get(ctx, model.CollectionPortfolios, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrPortfolioNotFound
	}

	prior, err := model.PortfolioFromFields(doc.ID, doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("decode portfolio %s: %w", id, err)
	}

	p := recordFromInput(input)
	p.ID = id
	p.CreatedAt = prior.CreatedAt
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	fields, err := p.Fields()
	if err != nil {
		return nil, fmt.Errorf("encode portfolio: %w", err)
	}
	if err := s.store.Set(ctx, model.CollectionPortfolios, id, fields); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return &p, nil
}

// Delete removes the record by id.
func (s *portfolioService) Delete(ctx context.Context, id string) error {
	_, found, err := s.store.Get(ctx, model.CollectionPortfolios, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.ErrPortfolioNotFound
	}

	if err := s.store.Delete(ctx, model.CollectionPortfolios, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *portfolioService) invalidate(ctx context.Context, id string) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, portfolioListKey)
}

// validateInput trims free-text fields and checks the §3 constraints.
// Failures never reach the store.
func (s *portfolioService) validateInput(input *PortfolioInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Client = strings.TrimSpace(input.Client)
	input.Category = strings.TrimSpace(input.Category)

	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	problems := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, apperrors.FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return &apperrors.ValidationError{Problems: problems}
}

// recordFromInput copies validated fields onto a record, applying the
// create-time defaults to omitted optional fields.
func recordFromInput(input *PortfolioInput) model.Portfolio {
	p := model.Portfolio{
		Title:       input.Title,
		Description: input.Description,
		Images:      input.Images,
		Client:      input.Client,
		Year:        input.Year,
		Category:    input.Category,
		GridItems:   input.GridItems,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Year == "" {
		p.Year = strconv.Itoa(time.Now().Year())
	}
	return p
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "title"
	case "Description":
		return "description"
	case "Client":
		return "client"
	case "Year":
		return "year"
	case "Category":
		return "category"
	case "ColSpan", "RowSpan":
		return "gridItems"
	default:
		return strings.ToLower(fe.Field())
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fieldName(fe) {
	case "title":
		return "Title must be 1-100 characters"
	case "description":
		return "Description must be less than 1000 characters"
	case "client":
		return "Client name must be less than 100 characters"
	case "year":
		return "Year must be 4 digits"
	case "category":
		return "Category must be less than 50 characters"
	case "gridItems":
		return "Grid spans must be within 1-6 columns and 1-4 rows"
	default:
		return fmt.Sprintf("Invalid value for %s", fieldName(fe))
	}
}

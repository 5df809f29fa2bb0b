package model

import "encoding/json"

// CollectionPortfolios is the document store collection holding portfolio records.
const CollectionPortfolios = "portfolios"

// GridItem carries per-image layout metadata used by the frontend grid.
// It parallels Portfolio.Images index-for-index by convention; the store
// does not enforce the alignment.
type GridItem struct {
	URL     string `json:"url"`
	ColSpan int    `json:"colSpan" validate:"min=1,max=6"`
	RowSpan int    `json:"rowSpan" validate:"min=1,max=4"`
}

// Portfolio represents one photography project shown on the site.
// Timestamps are ISO-8601 strings, matching the wire format the SPA expects.
type Portfolio struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Images      []string   `json:"images"`
	Client      string     `json:"client"`
	Year        string     `json:"year"`
	Category    string     `json:"category"`
	GridItems   []GridItem `json:"gridItems,omitempty"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// Fields returns the document fields persisted for the record.
// The id travels on the document reference, never inside the field map.
func (p Portfolio) Fields() (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	return fields, nil
}

// PortfolioFromFields decodes a stored field map back into a record.
func PortfolioFromFields(id string, fields map[string]interface{}) (Portfolio, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return Portfolio{}, err
	}
	var p Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		return Portfolio{}, err
	}
	p.ID = id
	return p, nil
}

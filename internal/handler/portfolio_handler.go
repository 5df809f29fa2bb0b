package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nordstudio/internal/response"
	"nordstudio/internal/service"
)

// PortfolioHandler handles portfolio CRUD endpoints.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// List godoc
// @Summary List all portfolios
// @Tags portfolio
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /portfolio [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	portfolios, err := h.portfolioService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(portfolios))
}

// Get godoc
// @Summary Get one portfolio by id
// @Tags portfolio
// @Produce json
// @Param id path string true "Portfolio ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /portfolio/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	portfolio, err := h.portfolioService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(portfolio))
}

// Create godoc
// @Summary Create a portfolio
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body service.PortfolioInput true "Portfolio fields"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	var input service.PortfolioInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	portfolio, err := h.portfolioService.Create(c.Request().Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, response.OK(portfolio))
}

// Update godoc
// @Summary Replace a portfolio's fields
// @Tags portfolio
// @Accept json
// @Produce json
// @Param id path string true "Portfolio ID"
// @Param request body service.PortfolioInput true "Portfolio fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /portfolio/{id} [put]
func (h *PortfolioHandler) Update(c echo.Context) error {
	var input service.PortfolioInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	portfolio, err := h.portfolioService.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(portfolio))
}

// Delete godoc
// @Summary Delete a portfolio
// @Tags portfolio
// @Produce json
// @Param id path string true "Portfolio ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	if err := h.portfolioService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.Msg("Portfolio deleted successfully"))
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/repository"
	"golang-stock-insight/internal/insight/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WatchlistHandler handles HTTP requests for the watchlist.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
	logger           *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService service.WatchlistService, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.AddStock)
	g.GET("", h.ListStocks)
	g.DELETE("/:id", h.RemoveStock)
}

// AddStock godoc
// @Summary Watch a stock
// @Description Add a symbol to the scheduled scan watchlist
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   stock  body    dto.AddWatchlistRequest   true    "Stock to watch"
// @Success 201 {object} entity.WatchlistStock
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [post]
func (h *WatchlistHandler) AddStock(c echo.Context) error {
	var req dto.AddWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	stock, err := h.watchlistService.Add(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to add watchlist stock", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add watchlist stock"})
	}

	return c.JSON(http.StatusCreated, stock)
}

// ListStocks godoc
// @Summary List watched stocks
// @Tags watchlist
// @Produce  json
// @Success 200 {array} entity.WatchlistStock
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) ListStocks(c echo.Context) error {
	stocks, err := h.watchlistService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list watchlist", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list watchlist"})
	}
	return c.JSON(http.StatusOK, stocks)
}

// RemoveStock godoc
// @Summary Stop watching a stock
// @Tags watchlist
// @Produce  json
// @Param   id  path    int true    "Watchlist entry ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist/{id} [delete]
func (h *WatchlistHandler) RemoveStock(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid watchlist entry ID"})
	}

	if err := h.watchlistService.Remove(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Watchlist entry not found"})
		}
		h.logger.Error("Failed to remove watchlist stock", logger.ErrorField(err), logger.Field("id", id))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to remove watchlist stock"})
	}
	return c.NoContent(http.StatusNoContent)
}

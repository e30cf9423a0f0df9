package http

import (
	"errors"
	"fmt"
	"net/http"

	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/repository"
	"golang-stock-insight/internal/insight/service"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/utils"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// JournalHandler handles HTTP requests for the trade journal.
type JournalHandler struct {
	journalService service.JournalService
	logger         *logger.Logger
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalService service.JournalService, logger *logger.Logger) *JournalHandler {
	return &JournalHandler{journalService: journalService, logger: logger}
}

// RegisterRoutes registers the journal routes to the Echo group.
func (h *JournalHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.AddEntry)
	g.GET("", h.ListEntries)
	g.POST("/:id/close", h.CloseEntry)
	g.DELETE("/:id", h.DeleteEntry)
	g.GET("/export", h.ExportEntries)
	g.GET("/summary", h.GetSummary)
}

// AddEntry godoc
// @Summary Record a trade
// @Description Add an open position to the journal
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry  body    dto.AddJournalRequest   true    "Trade to record"
// @Success 201 {object} entity.JournalEntry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal [post]
func (h *JournalHandler) AddEntry(c echo.Context) error {
	var req dto.AddJournalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	entry, err := h.journalService.Add(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to add journal entry", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add journal entry"})
	}

	return c.JSON(http.StatusCreated, entry)
}

// ListEntries godoc
// @Summary List journal entries
// @Description List all journal entries in insertion order
// @Tags journal
// @Produce  json
// @Success 200 {array} entity.JournalEntry
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal [get]
func (h *JournalHandler) ListEntries(c echo.Context) error {
	entries, err := h.journalService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list journal entries", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list journal entries"})
	}
	return c.JSON(http.StatusOK, entries)
}

// CloseEntry godoc
// @Summary Close a position
// @Description Close an open journal entry and realize its P&L
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   id     path    string true  "Entry ID"
// @Param   close  body    dto.CloseJournalRequest true "Exit price"
// @Success 200 {object} entity.JournalEntry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal/{id}/close [post]
func (h *JournalHandler) CloseEntry(c echo.Context) error {
	var req dto.CloseJournalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	entry, err := h.journalService.Close(c.Request().Context(), c.Param("id"), req.ExitPrice)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidArgument):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Journal entry not found"})
		case errors.Is(err, repository.ErrInvalidState):
			return c.JSON(http.StatusConflict, echo.Map{"error": "Journal entry is already closed"})
		}
		h.logger.Error("Failed to close journal entry", logger.ErrorField(err), logger.StringField("id", c.Param("id")))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to close journal entry"})
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Description Delete a journal entry by its ID
// @Tags journal
// @Produce  json
// @Param   id  path    string true    "Entry ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal/{id} [delete]
func (h *JournalHandler) DeleteEntry(c echo.Context) error {
	if err := h.journalService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Journal entry not found"})
		}
		h.logger.Error("Failed to delete journal entry", logger.ErrorField(err), logger.StringField("id", c.Param("id")))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete journal entry"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportEntries godoc
// @Summary Export the journal
// @Description Download all journal entries as CSV or XLSX
// @Tags journal
// @Produce  octet-stream
// @Param   format query   string false "csv or xlsx (default csv)"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal/export [get]
func (h *JournalHandler) ExportEntries(c echo.Context) error {
	format := c.QueryParam("format")
	if format == "" {
		format = service.ExportFormatCSV
	}

	data, err := h.journalService.Export(c.Request().Context(), format)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to export journal", logger.ErrorField(err), logger.StringField("format", format))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to export journal"})
	}

	contentType := "text/csv"
	if format == service.ExportFormatXLSX {
		contentType = xlsxContentType
	}
	filename := fmt.Sprintf("journal-%s.%s", utils.TimeNowEastern().Format("20060102"), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, contentType, data)
}

// GetSummary godoc
// @Summary Summarize open positions
// @Description Value open positions against the latest market price
// @Tags journal
// @Produce  json
// @Success 200 {array} dto.JournalPositionSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal/summary [get]
func (h *JournalHandler) GetSummary(c echo.Context) error {
	summary, err := h.journalService.Summary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to summarize journal", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to summarize journal"})
	}
	return c.JSON(http.StatusOK, summary)
}

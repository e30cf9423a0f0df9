package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles HTTP requests for stock analyses.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	snapshotService service.SnapshotService
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, snapshotService service.SnapshotService, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, snapshotService: snapshotService, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stocks/:symbol/analysis", h.GetAnalysis)
	g.GET("/stocks/:symbol/chart", h.GetChart)
	g.GET("/snapshots", h.GetSnapshots)
}

// GetAnalysis godoc
// @Summary Analyze a stock
// @Description Compute technical indicators and a composite score for a symbol
// @Tags analysis
// @Produce  json
// @Param   symbol   path    string true  "Stock symbol"
// @Param   interval query   string false "Bar interval (default 1d)"
// @Param   range    query   string false "History range (default 1y)"
// @Param   horizon  query   string false "Moving-average horizon: short or long"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{symbol}/analysis [get]
func (h *AnalysisHandler) GetAnalysis(c echo.Context) error {
	param := dto.GetStockDataParam{
		Symbol:   strings.ToUpper(c.Param("symbol")),
		Interval: c.QueryParam("interval"),
		Range:    c.QueryParam("range"),
	}

	resp, err := h.analysisService.Analyze(c.Request().Context(), param, c.QueryParam("horizon"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to analyze stock", logger.ErrorField(err), logger.StringField("symbol", param.Symbol))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to analyze stock"})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetChart godoc
// @Summary Get raw price bars
// @Description Get the raw OHLCV series used by the analysis
// @Tags analysis
// @Produce  json
// @Param   symbol   path    string true  "Stock symbol"
// @Param   interval query   string false "Bar interval (default 1d)"
// @Param   range    query   string false "History range (default 1y)"
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks/{symbol}/chart [get]
func (h *AnalysisHandler) GetChart(c echo.Context) error {
	param := dto.GetStockDataParam{
		Symbol:   strings.ToUpper(c.Param("symbol")),
		Interval: c.QueryParam("interval"),
		Range:    c.QueryParam("range"),
	}

	resp, err := h.analysisService.GetChart(c.Request().Context(), param)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to get chart data", logger.ErrorField(err), logger.StringField("symbol", param.Symbol))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get chart data"})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetSnapshots godoc
// @Summary List analysis snapshots
// @Description List persisted analysis results, newest first, optionally filtered by symbol
// @Tags analysis
// @Produce  json
// @Param   symbol query   string false "Stock symbol"
// @Param   limit  query   int    false "Max rows (default 20)"
// @Success 200 {array} entity.AnalysisSnapshot
// @Failure 500 {object} dto.ErrorResponse
// @Router /snapshots [get]
func (h *AnalysisHandler) GetSnapshots(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var (
		snapshots interface{}
		err       error
	)
	if symbol := c.QueryParam("symbol"); symbol != "" {
		snapshots, err = h.snapshotService.History(c.Request().Context(), strings.ToUpper(symbol), limit)
	} else {
		snapshots, err = h.snapshotService.Latest(c.Request().Context(), limit)
	}
	if err != nil {
		h.logger.Error("Failed to list snapshots", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list snapshots"})
	}

	return c.JSON(http.StatusOK, snapshots)
}

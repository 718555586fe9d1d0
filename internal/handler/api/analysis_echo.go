package api

import (
	"time"

	"StockSage/internal/domain/models"
	"StockSage/internal/usecase"
	xhttp "StockSage/pkg/http"
	xlogger "StockSage/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisEchoHandler exposes the analysis engine over HTTP.
type AnalysisEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
}

func NewAnalysisEchoHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) *AnalysisEchoHandler {
	return &AnalysisEchoHandler{logger: logger, analyzer: analyzer}
}

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analyze/:symbol", h.Analyze)
	g.GET("/accuracy", h.Accuracy)
	e.GET("/health", h.Health)
}

func (h *AnalysisEchoHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), req.Symbol)
	if err != nil {
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("analysis failed for %s", req.Symbol).WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

type accuracyResponse struct {
	models.AccuracyReport
	Timestamp time.Time `json:"timestamp"`
}

func (h *AnalysisEchoHandler) Accuracy(c echo.Context) error {
	return xhttp.SuccessResponse(c, accuracyResponse{
		AccuracyReport: h.analyzer.Accuracy(),
		Timestamp:      time.Now().UTC(),
	})
}

func (h *AnalysisEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

package api

import (
	"errors"

	models "StockPulse/internal/domain/models"
	"StockPulse/internal/usecase"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"

	"github.com/labstack/echo/v4"
)

const msgQueryTooShort = "Query too short"

// StockEchoHandler serves the stock endpoints and the health probe.
type StockEchoHandler struct {
	logger *xlogger.Logger
	stocks *usecase.StockUseCase
}

func NewStockEchoHandler(logger *xlogger.Logger, stocks *usecase.StockUseCase) *StockEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &StockEchoHandler{logger: logger, stocks: stocks}
}

func (h *StockEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/stock")
	g.GET("/search", h.Search)
	g.GET("/:symbol/info", h.Info)
	g.GET("/:symbol/history", h.History)

	e.GET("/health", h.Health)
}

func (h *StockEchoHandler) Info(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr[0].Message)
	}

	res := h.stocks.Info(c.Request().Context(), req.Symbol)
	return xhttp.SourcedResponse(c, res.Data, res.Source())
}

func (h *StockEchoHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr[0].Message)
	}
	// Unparsable or non-positive values mean "use the default".
	days := util.ParseIntDefault(req.Days, 0)

	res := h.stocks.History(c.Request().Context(), req.Symbol, days)
	return xhttp.SourcedResponse(c, res.Data, res.Source())
}

func (h *StockEchoHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, msgQueryTooShort)
	}

	rows, err := h.stocks.Search(c.Request().Context(), req.Q)
	if err != nil {
		if errors.Is(err, usecase.ErrQueryTooShort) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(msgQueryTooShort).WithError(err))
		}
		h.logger.Error("search usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError(err.Error()).WithError(err))
	}
	return xhttp.SourcedResponse(c, rows, models.SourceMock)
}

type healthStatus struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

func (h *StockEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, healthStatus{Status: "ok", Provider: h.stocks.ProviderName()})
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const defaultRatesPageSize = 100

// ratesService is what the rates routes need from the converter.
type ratesService interface {
	portssvc.RateReaderSvc
	portssvc.RateRefresherSvc
}

// ratesHandler handles HTTP requests related to stored rates.
type ratesHandler struct {
	ratesService ratesService
}

func newRatesHandler(rs ratesService) *ratesHandler {
	return &ratesHandler{ratesService: rs}
}

// RegisterRateRoutes registers the rate listing and refresh routes. The
// refresh route runs refreshGuards (auth, rate limiting) first.
func RegisterRateRoutes(rg *gin.RouterGroup, rs ratesService, refreshGuards ...gin.HandlerFunc) {
	h := newRatesHandler(rs)

	refreshChain := append(append([]gin.HandlerFunc{}, refreshGuards...), h.refreshRates)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.POST("/refresh", refreshChain...)
	}
}

// listRates godoc
// @Summary List stored rates
// @Description Lists rates relative to the reference base ordered by symbol. Pass nextToken from a previous page to continue.
// @Tags rates
// @Produce  json
// @Param   limit query int false "Page size (1-500)" default(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRatesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *ratesHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind list rates query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Limit == 0 {
		params.Limit = defaultRatesPageSize
	}

	base := h.ratesService.ReferenceBase()
	var after string
	if params.NextToken != "" {
		tokenBase, symbol, err := pagination.DecodeRateCursor(params.NextToken)
		if err != nil {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
		if tokenBase != base {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nextToken belongs to a different reference base"})
			return
		}
		after = symbol
	}

	records, err := h.ratesService.ListRates(c.Request.Context(), after, params.Limit)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list rates")
		return
	}

	resp := dto.ListRatesResponse{Base: base, Rates: dto.ToRateResponses(records)}
	if len(records) == params.Limit {
		token := pagination.EncodeRateCursor(base, records[len(records)-1].Symbol)
		resp.NextToken = &token
	}

	logger.Info("Rates listed", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, resp)
}

// refreshRates godoc
// @Summary Force a rate refresh
// @Description Fetches fresh rates from the providers regardless of the age of stored rates
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Rate providers unavailable"
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *ratesHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if subject, ok := middleware.GetSubjectFromContext(c); ok {
		logger = logger.With(slog.String("requested_by", subject))
	}
	logger.Info("Received request to refresh rates")

	meta, err := h.ratesService.ForceUpdate(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to refresh rates")
		return
	}

	logger.Info("Rates refreshed", slog.String("source", meta.Source))
	c.JSON(http.StatusOK, dto.RefreshResponse{
		Base:      h.ratesService.ReferenceBase(),
		FetchedAt: meta.FetchedAt,
		Source:    meta.Source,
	})
}

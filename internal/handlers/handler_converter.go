package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_converter/internal/core/currency"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

// converterHandler handles HTTP requests related to conversions.
type converterHandler struct {
	converterService portssvc.ConverterSvc
}

func newConverterHandler(cs portssvc.ConverterSvc) *converterHandler {
	return &converterHandler{
		converterService: cs,
	}
}

// RegisterConverterRoutes registers the conversion and name lookup routes.
func RegisterConverterRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvc) {
	h := newConverterHandler(converterService)

	rg.POST("/convert", h.convert)
	rg.GET("/convert", h.convert)
	rg.GET("/currencies/:name", h.normalizeCurrency)
}

// convert godoc
// @Summary Convert an amount between two currencies
// @Description Accepts either a free-form pair ("usd to eur", "рубль - доллар") or separate from/to values. The pair wins when both are given. Amounts may use spaces, underscores or a comma decimal mark.
// @Tags convert
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertRequest false "Conversion request (POST)"
// @Param   pair query string false "Currency pair (GET)"
// @Param   from query string false "Source currency (GET)"
// @Param   to query string false "Target currency (GET)"
// @Param   amount query string false "Amount (GET)"
// @Param   lang query string false "Display language" Enums(eng, ru)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rate unavailable"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Rate providers unavailable"
// @Router /convert [post]
// @Router /convert [get]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind convert request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert")
		return
	}

	var res *domain.ConversionResult
	if pair := strings.TrimSpace(req.Pair); pair != "" {
		logger = logger.With(slog.String("pair", pair))
		res, err = h.converterService.ConvertPair(c.Request.Context(), pair, amount)
	} else {
		logger = logger.With(slog.String("from", req.From), slog.String("to", req.To))
		res, err = h.converterService.Convert(c.Request.Context(), req.From, req.To, amount)
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert")
		return
	}

	logger.Info("Conversion completed",
		slog.String("base", res.Base),
		slog.String("quote", res.Quote),
		slog.String("source", res.Source))
	c.JSON(http.StatusOK, dto.ToConversionResponse(res, req.Lang))
}

// normalizeCurrency godoc
// @Summary Resolve a currency name to its code
// @Description Maps a code, name or symbol in English or Russian ("dollar", "евро", "₿") to a canonical code
// @Tags currencies
// @Produce  json
// @Param   name path string true "Currency code, name or symbol"
// @Success 200 {object} dto.NormalizeResponse
// @Failure 400 {object} map[string]string "Unrecognized currency"
// @Router /currencies/{name} [get]
func (h *converterHandler) normalizeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	code, err := currency.Normalize(name)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve currency")
		return
	}

	c.JSON(http.StatusOK, dto.NormalizeResponse{Input: name, Code: code})
}

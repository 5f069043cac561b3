package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps an error from the converter to a status code and
// writes it as {"error": "..."}. fallback is the message for unexpected errors.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrParse),
		errors.Is(err, apperrors.ErrRecognition):
		logger.Warn("Rejected input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateUnavailable):
		logger.Warn("Rate unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAllProvidersFailed),
		errors.Is(err, apperrors.ErrProvider),
		errors.Is(err, apperrors.ErrRebase):
		logger.Error("Rate providers failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate providers are unavailable"})
	case errors.Is(err, apperrors.ErrClosed):
		logger.Error("Converter is closed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service is shutting down"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

package middleware

import (
	"log/slog"
	"net/http"

	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	apiKeyHeader  = "X-API-Key"
	ctxPartnerKey = "partner"
)

type APIKeyMiddleware struct {
	partnerQueries queries.PartnerQueries
}

func NewAPIKeyMiddleware(partnerQueries queries.PartnerQueries) *APIKeyMiddleware {
	return &APIKeyMiddleware{partnerQueries: partnerQueries}
}

func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "API key required",
			})
			c.Abort()
			return
		}

		partner, err := m.partnerQueries.AuthenticateKey(c.Request.Context(), key)
		if err != nil {
			if errs.Is(err, errs.ErrStoreUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"error": "Service temporarily unavailable",
				})
			} else {
				slog.Warn("API key authentication failed", "client_ip", c.ClientIP())
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid API key",
				})
			}
			c.Abort()
			return
		}

		c.Set(ctxPartnerKey, partner)
		c.Next()
	}
}

func GetPartner(c *gin.Context) (*queries.PartnerView, bool) {
	value, exists := c.Get(ctxPartnerKey)
	if !exists {
		return nil, false
	}

	partner, ok := value.(*queries.PartnerView)
	return partner, ok
}

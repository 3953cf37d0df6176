package api

import (
	"net/http"

	reqdto "karoca-backend/internal/handler/dto/request"
	resdto "karoca-backend/internal/handler/dto/response"
	"karoca-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	promoQueries queries.PromoQueries
}

func NewPromoHandler(promoQueries queries.PromoQueries) *PromoHandler {
	return &PromoHandler{promoQueries: promoQueries}
}

// @Summary Validate promo code
// @Description Check whether a promo code is currently usable. Read-only, never consumes a use.
// @Tags promos
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo code"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} map[string]string
// @Router /promos/validate [post]
func (h *PromoHandler) ValidatePromoCode(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.promoQueries.ValidatePromoCode(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoValidationView(view))
}

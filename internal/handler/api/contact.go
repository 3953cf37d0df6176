package api

import (
	"errors"
	"net/http"

	reqdto "karoca-backend/internal/handler/dto/request"
	"karoca-backend/internal/pkg/errs"
	"karoca-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactCommands commands.ContactCommands
}

func NewContactHandler(contactCommands commands.ContactCommands) *ContactHandler {
	return &ContactHandler{contactCommands: contactCommands}
}

// @Summary Submit contact message
// @Description Leave a message for the rental office
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /contact [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.contactCommands.SubmitContactMessage(c.Request.Context(), commands.SubmitContactParams{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		var validationErr *commands.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "Validation failed",
				"violations": validationErr.Violations,
			})
		case errs.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

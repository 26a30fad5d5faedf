package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

// CreateInvitationController handles the create-invitation endpoint only (one controller per endpoint)
type CreateInvitationController struct {
	UC     *usecase.CreateInvitationUseCase
	Logger *zap.Logger
}

func NewCreateInvitationController(uc *usecase.CreateInvitationUseCase, logger *zap.Logger) *CreateInvitationController {
	return &CreateInvitationController{UC: uc, Logger: logger}
}

type createInvitationRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *CreateInvitationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createInvitationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.CreateInvitationInput{InviterID: httpx.UserID(c), Email: req.Email})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"invitation":   res.Invitation,
			"link":         res.Link,
			"email_queued": res.EmailQueued,
		})
	}
}

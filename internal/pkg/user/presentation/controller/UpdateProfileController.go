package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
)

type UpdateProfileController struct {
	UC     *usecase.UpdateProfileUseCase
	Logger *zap.Logger
}

func NewUpdateProfileController(uc *usecase.UpdateProfileUseCase, logger *zap.Logger) *UpdateProfileController {
	return &UpdateProfileController{UC: uc, Logger: logger}
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
}

func (h *UpdateProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.UpdateProfileInput{
			UserID:      httpx.UserID(c),
			DisplayName: req.DisplayName,
			Email:       req.Email,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

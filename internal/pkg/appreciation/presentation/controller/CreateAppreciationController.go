package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/usecase"
)

type CreateAppreciationController struct {
	UC     *usecase.CreateAppreciationUseCase
	Logger *zap.Logger
}

func NewCreateAppreciationController(uc *usecase.CreateAppreciationUseCase, logger *zap.Logger) *CreateAppreciationController {
	return &CreateAppreciationController{UC: uc, Logger: logger}
}

type createAppreciationRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CreateAppreciationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createAppreciationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		a, err := h.UC.Execute(ctx, httpx.UserID(c), req.Content)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

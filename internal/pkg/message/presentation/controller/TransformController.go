package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/usecase"
)

// TransformController rewrites a statement without saving it.
type TransformController struct {
	UC     *usecase.TransformMessageUseCase
	Logger *zap.Logger
}

func NewTransformController(uc *usecase.TransformMessageUseCase, logger *zap.Logger) *TransformController {
	return &TransformController{UC: uc, Logger: logger}
}

type transformRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

func (h *TransformController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req transformRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		// Model calls are slower than the database budget.
		ctx, cancel := httpx.Timeout(c, 45*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.TransformInput{Message: req.Message, Context: req.Context})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

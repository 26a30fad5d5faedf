package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/usecase"
)

type StartExerciseController struct {
	UC     *usecase.StartExerciseUseCase
	Logger *zap.Logger
}

func NewStartExerciseController(uc *usecase.StartExerciseUseCase, logger *zap.Logger) *StartExerciseController {
	return &StartExerciseController{UC: uc, Logger: logger}
}

type startRequest struct {
	Template string `json:"template" binding:"required"`
}

func (h *StartExerciseController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req startRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		e, err := h.UC.Execute(ctx, httpx.UserID(c), req.Template)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, e)
	}
}

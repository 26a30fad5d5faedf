package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/usecase"
)

type ListExercisesController struct {
	UC     *usecase.ListExercisesUseCase
	Logger *zap.Logger
}

func NewListExercisesController(uc *usecase.ListExercisesUseCase, logger *zap.Logger) *ListExercisesController {
	return &ListExercisesController{UC: uc, Logger: logger}
}

func (h *ListExercisesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		out, err := h.UC.Execute(ctx, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

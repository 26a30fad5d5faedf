package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/usecase"
)

type GetExerciseController struct {
	UC     *usecase.GetExerciseUseCase
	Logger *zap.Logger
}

func NewGetExerciseController(uc *usecase.GetExerciseUseCase, logger *zap.Logger) *GetExerciseController {
	return &GetExerciseController{UC: uc, Logger: logger}
}

func (h *GetExerciseController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", exercise.ErrExerciseNotFound)
		if !ok {
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		e, err := h.UC.Execute(ctx, id, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

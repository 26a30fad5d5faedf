package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/usecase"
)

type RecordProgressController struct {
	UC     *usecase.RecordProgressUseCase
	Logger *zap.Logger
}

func NewRecordProgressController(uc *usecase.RecordProgressUseCase, logger *zap.Logger) *RecordProgressController {
	return &RecordProgressController{UC: uc, Logger: logger}
}

type progressRequest struct {
	Step     *int   `json:"step" binding:"required"`
	Response string `json:"response"`
}

func (h *RecordProgressController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", exercise.ErrExerciseNotFound)
		if !ok {
			return
		}

		var req progressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		e, err := h.UC.Execute(ctx, usecase.RecordProgressInput{
			ExerciseID: id,
			UserID:     httpx.UserID(c),
			Step:       *req.Step,
			Response:   req.Response,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

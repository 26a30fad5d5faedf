package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/usecase"
)

type UpdateEntryController struct {
	UC     *usecase.UpdateEntryUseCase
	Logger *zap.Logger
}

func NewUpdateEntryController(uc *usecase.UpdateEntryUseCase, logger *zap.Logger) *UpdateEntryController {
	return &UpdateEntryController{UC: uc, Logger: logger}
}

type updateEntryRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Mood     *string `json:"mood"`
	IsShared *bool   `json:"is_shared"`
}

func (h *UpdateEntryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", journal.ErrEntryNotFound)
		if !ok {
			return
		}

		var req updateEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		e, err := h.UC.Execute(ctx, usecase.UpdateEntryInput{
			ID:     id,
			UserID: httpx.UserID(c),
			Patch: journal.Patch{
				Title:    req.Title,
				Content:  req.Content,
				Mood:     req.Mood,
				IsShared: req.IsShared,
			},
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/usecase"
)

type CreateEntryController struct {
	UC     *usecase.CreateEntryUseCase
	Logger *zap.Logger
}

func NewCreateEntryController(uc *usecase.CreateEntryUseCase, logger *zap.Logger) *CreateEntryController {
	return &CreateEntryController{UC: uc, Logger: logger}
}

type createEntryRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Mood     *string `json:"mood"`
	IsShared bool    `json:"is_shared"`
}

func (h *CreateEntryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		e, err := h.UC.Execute(ctx, usecase.CreateEntryInput{
			UserID:   httpx.UserID(c),
			Title:    req.Title,
			Content:  req.Content,
			Mood:     req.Mood,
			IsShared: req.IsShared,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, e)
	}
}

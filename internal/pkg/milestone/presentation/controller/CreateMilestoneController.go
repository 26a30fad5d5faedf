package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/usecase"
)

type CreateMilestoneController struct {
	UC     *usecase.CreateMilestoneUseCase
	Logger *zap.Logger
}

func NewCreateMilestoneController(uc *usecase.CreateMilestoneUseCase, logger *zap.Logger) *CreateMilestoneController {
	return &CreateMilestoneController{UC: uc, Logger: logger}
}

type createMilestoneRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Kind        string  `json:"kind"`
	OccurredOn  string  `json:"occurred_on" binding:"required"`
}

func (h *CreateMilestoneController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createMilestoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		m, err := h.UC.Execute(ctx, usecase.CreateMilestoneInput{
			UserID:      httpx.UserID(c),
			Title:       req.Title,
			Description: req.Description,
			Kind:        req.Kind,
			OccurredOn:  req.OccurredOn,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

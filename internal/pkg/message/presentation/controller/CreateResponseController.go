package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/usecase"
)

type CreateResponseController struct {
	UC     *usecase.CreateResponseUseCase
	Logger *zap.Logger
}

func NewCreateResponseController(uc *usecase.CreateResponseUseCase, logger *zap.Logger) *CreateResponseController {
	return &CreateResponseController{UC: uc, Logger: logger}
}

type createResponseRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CreateResponseController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", message.ErrMessageNotFound)
		if !ok {
			return
		}

		var req createResponseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		resp, err := h.UC.Execute(ctx, usecase.CreateResponseInput{
			MessageID: id,
			UserID:    httpx.UserID(c),
			Content:   req.Content,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

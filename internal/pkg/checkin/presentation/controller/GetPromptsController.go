package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/usecase"
)

type GetPromptsController struct {
	UC *usecase.GetPromptsUseCase
}

func NewGetPromptsController(uc *usecase.GetPromptsUseCase) *GetPromptsController {
	return &GetPromptsController{UC: uc}
}

func (h *GetPromptsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.UC.Execute())
	}
}

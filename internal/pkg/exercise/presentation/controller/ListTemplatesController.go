package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
)

type ListTemplatesController struct{}

func NewListTemplatesController() *ListTemplatesController { return &ListTemplatesController{} }

func (h *ListTemplatesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, exercise.Templates)
	}
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
)

// GetAvatarController streams a stored avatar image.
type GetAvatarController struct {
	UC     *usecase.GetAvatarUseCase
	Logger *zap.Logger
}

func NewGetAvatarController(uc *usecase.GetAvatarUseCase, logger *zap.Logger) *GetAvatarController {
	return &GetAvatarController{UC: uc, Logger: logger}
}

func (h *GetAvatarController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", user.ErrAvatarNotFound)
		if !ok {
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		a, err := h.UC.Execute(ctx, id)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.Header("Cache-Control", "private, max-age=300")
		c.Data(http.StatusOK, a.ContentType, a.Data)
	}
}

package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/usecase"
)

// ListCheckInsController lists a week's answers, the caller's own or the
// partner's shared ones. ?week= takes any day of the wanted week.
type ListCheckInsController struct {
	List   func(ctx context.Context, userID, week string) ([]checkin.Response, error)
	Logger *zap.Logger
}

func NewListCheckInsController(uc *usecase.ListCheckInsUseCase, logger *zap.Logger) *ListCheckInsController {
	return &ListCheckInsController{List: uc.Execute, Logger: logger}
}

func NewListPartnerCheckInsController(uc *usecase.ListPartnerCheckInsUseCase, logger *zap.Logger) *ListCheckInsController {
	return &ListCheckInsController{List: uc.Execute, Logger: logger}
}

func (h *ListCheckInsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		out, err := h.List(ctx, httpx.UserID(c), c.Query("week"))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

package http

import (
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

func RegisterRoutes(g httpx.Groups, repo repository.CheckInRepository, partners shared.PartnerResolver, notifier shared.Notifier, logger *zap.Logger) {
	promptsCtl := controller.NewGetPromptsController(usecase.NewGetPromptsUseCase())
	submitCtl := controller.NewSubmitCheckInController(usecase.NewSubmitCheckInUseCase(repo, partners, notifier), logger)
	listCtl := controller.NewListCheckInsController(usecase.NewListCheckInsUseCase(repo), logger)
	partnerCtl := controller.NewListPartnerCheckInsController(usecase.NewListPartnerCheckInsUseCase(repo, partners), logger)

	g.Private.GET("/check-ins/prompts", promptsCtl.Handle())
	g.Private.POST("/check-ins", submitCtl.Handle())
	g.Private.GET("/check-ins", listCtl.Handle())
	g.Private.GET("/check-ins/partner", partnerCtl.Handle())
}

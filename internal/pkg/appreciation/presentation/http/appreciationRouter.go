package http

import (
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

func RegisterRoutes(g httpx.Groups, repo repository.AppreciationRepository, partners shared.PartnerResolver, notifier shared.Notifier, logger *zap.Logger) {
	createCtl := controller.NewCreateAppreciationController(usecase.NewCreateAppreciationUseCase(repo, partners, notifier), logger)
	receivedCtl := controller.NewListAppreciationsController(usecase.NewListReceivedUseCase(repo), logger)
	sentCtl := controller.NewListAppreciationsController(usecase.NewListSentUseCase(repo), logger)

	g.Private.POST("/appreciations", createCtl.Handle())
	g.Private.GET("/appreciations", receivedCtl.Handle())
	g.Private.GET("/appreciations/sent", sentCtl.Handle())
}

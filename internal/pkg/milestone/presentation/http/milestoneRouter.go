package http

import (
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

func RegisterRoutes(g httpx.Groups, repo repository.MilestoneRepository, partners shared.PartnerResolver, notifier shared.Notifier, logger *zap.Logger) {
	createCtl := controller.NewCreateMilestoneController(usecase.NewCreateMilestoneUseCase(repo, partners, notifier), logger)
	listCtl := controller.NewListMilestonesController(usecase.NewListMilestonesUseCase(repo, partners), logger)
	deleteCtl := controller.NewDeleteMilestoneController(usecase.NewDeleteMilestoneUseCase(repo), logger)

	g.Private.POST("/milestones", createCtl.Handle())
	g.Private.GET("/milestones", listCtl.Handle())
	g.Private.DELETE("/milestones/:id", deleteCtl.Handle())
}

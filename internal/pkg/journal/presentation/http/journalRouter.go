package http

import (
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// RegisterRoutes registers journal endpoints on the session-guarded group.
func RegisterRoutes(g httpx.Groups, repo repository.JournalRepository, partners shared.PartnerResolver, notifier shared.Notifier, logger *zap.Logger) {
	createCtl := controller.NewCreateEntryController(usecase.NewCreateEntryUseCase(repo, partners, notifier), logger)
	listCtl := controller.NewListEntriesController(usecase.NewListEntriesUseCase(repo), logger)
	sharedCtl := controller.NewListSharedEntriesController(usecase.NewListSharedEntriesUseCase(repo, partners), logger)
	getCtl := controller.NewGetEntryController(usecase.NewGetEntryUseCase(repo), logger)
	updateCtl := controller.NewUpdateEntryController(usecase.NewUpdateEntryUseCase(repo, partners, notifier), logger)
	deleteCtl := controller.NewDeleteEntryController(usecase.NewDeleteEntryUseCase(repo), logger)

	g.Private.POST("/journal", createCtl.Handle())
	g.Private.GET("/journal", listCtl.Handle())
	g.Private.GET("/journal/shared", sharedCtl.Handle())
	g.Private.GET("/journal/:id", getCtl.Handle())
	g.Private.PATCH("/journal/:id", updateCtl.Handle())
	g.Private.DELETE("/journal/:id", deleteCtl.Handle())
}

package http

import (
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

func RegisterRoutes(g httpx.Groups, repo repository.ExerciseRepository, partners shared.PartnerResolver, notifier shared.Notifier, logger *zap.Logger) {
	templatesCtl := controller.NewListTemplatesController()
	startCtl := controller.NewStartExerciseController(usecase.NewStartExerciseUseCase(repo, partners), logger)
	listCtl := controller.NewListExercisesController(usecase.NewListExercisesUseCase(repo, partners), logger)
	getCtl := controller.NewGetExerciseController(usecase.NewGetExerciseUseCase(repo, partners), logger)
	progressCtl := controller.NewRecordProgressController(usecase.NewRecordProgressUseCase(repo, partners, notifier), logger)

	g.Private.GET("/exercises/templates", templatesCtl.Handle())
	g.Private.POST("/exercises", startCtl.Handle())
	g.Private.GET("/exercises", listCtl.Handle())
	g.Private.GET("/exercises/:id", getCtl.Handle())
	g.Private.PATCH("/exercises/:id/progress", progressCtl.Handle())
}

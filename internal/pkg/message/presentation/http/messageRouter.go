package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// RegisterRoutes registers the transform endpoint and the saved message
// endpoints. limit guards /transform and may be nil.
func RegisterRoutes(g httpx.Groups, repo repository.MessageRepository, ai aiport.Transformer, partners shared.PartnerResolver, notifier shared.Notifier, limit gin.HandlerFunc, logger *zap.Logger) {
	transformCtl := controller.NewTransformController(usecase.NewTransformMessageUseCase(ai), logger)
	createCtl := controller.NewCreateMessageController(usecase.NewCreateMessageUseCase(repo, partners, notifier), logger)
	listCtl := controller.NewListMessagesController(usecase.NewListMessagesUseCase(repo), logger)
	partnerCtl := controller.NewListPartnerMessagesController(usecase.NewListPartnerMessagesUseCase(repo, partners), logger)
	getCtl := controller.NewGetMessageController(usecase.NewGetMessageUseCase(repo, partners), logger)
	respondCtl := controller.NewCreateResponseController(usecase.NewCreateResponseUseCase(repo, partners, notifier), logger)
	responsesCtl := controller.NewListResponsesController(usecase.NewListResponsesUseCase(repo, partners), logger)

	transform := []gin.HandlerFunc{transformCtl.Handle()}
	if limit != nil {
		transform = append([]gin.HandlerFunc{limit}, transform...)
	}
	g.Private.POST("/transform", transform...)

	g.Private.POST("/messages", createCtl.Handle())
	g.Private.GET("/messages", listCtl.Handle())
	g.Private.GET("/messages/partner", partnerCtl.Handle())
	g.Private.GET("/messages/:id", getCtl.Handle())
	g.Private.POST("/messages/:id/responses", respondCtl.Handle())
	g.Private.GET("/messages/:id/responses", responsesCtl.Handle())
}

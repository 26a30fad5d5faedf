package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// RegisterRoutes registers conflict thread endpoints. limitAI throttles
// messages sent with the AI rewrite flag and may be nil.
func RegisterRoutes(g httpx.Groups, repo repository.ConflictRepository, partners shared.PartnerResolver, notifier shared.Notifier, ai aiport.Transformer, summarizer aiport.Summarizer, limitAI func(c *gin.Context) bool, logger *zap.Logger) {
	createCtl := controller.NewCreateThreadController(usecase.NewCreateThreadUseCase(repo, partners, notifier), logger)
	listCtl := controller.NewListThreadsController(usecase.NewListThreadsUseCase(repo, partners), logger)
	getCtl := controller.NewGetThreadController(usecase.NewGetThreadUseCase(repo, partners), logger)
	messagesCtl := controller.NewListThreadMessagesController(usecase.NewListThreadMessagesUseCase(repo, partners), logger)
	addCtl := controller.NewAddMessageController(usecase.NewAddMessageUseCase(repo, partners, notifier, ai), limitAI, logger)
	statusCtl := controller.NewUpdateStatusController(usecase.NewUpdateStatusUseCase(repo, partners, notifier, summarizer, logger), logger)

	g.Private.POST("/conflict-threads", createCtl.Handle())
	g.Private.GET("/conflict-threads", listCtl.Handle())
	g.Private.GET("/conflict-threads/:id", getCtl.Handle())
	g.Private.GET("/conflict-threads/:id/messages", messagesCtl.Handle())
	g.Private.POST("/conflict-threads/:id/messages", addCtl.Handle())
	g.Private.PATCH("/conflict-threads/:id/status", statusCtl.Handle())
}

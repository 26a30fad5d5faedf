package http

import (
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

func RegisterRoutes(g httpx.Groups, repo repository.DirectMessageRepository, partners shared.PartnerResolver, notifier shared.Notifier, logger *zap.Logger) {
	sendCtl := controller.NewSendDirectMessageController(usecase.NewSendDirectMessageUseCase(repo, partners, notifier), logger)
	listCtl := controller.NewListConversationController(usecase.NewListConversationUseCase(repo, partners), logger)
	unreadCtl := controller.NewUnreadCountController(usecase.NewUnreadCountUseCase(repo), logger)
	readCtl := controller.NewMarkReadController(usecase.NewMarkReadUseCase(repo, partners, notifier), logger)

	g.Private.POST("/direct-messages", sendCtl.Handle())
	g.Private.GET("/direct-messages", listCtl.Handle())
	g.Private.GET("/direct-messages/unread-count", unreadCtl.Handle())
	g.Private.POST("/direct-messages/read", readCtl.Handle())
}

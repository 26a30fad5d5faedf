package http

import (
	"time"

	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	queueport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/presentation/controller"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// Options carries the settings of the invitation flow.
type Options struct {
	BaseURL       string
	InvitationTTL time.Duration
	Register      usecase.RegisterAccountFunc
}

// RegisterRoutes registers invitation and partnership endpoints. Invitation
// preview and acceptance are public; the rest needs a session.
func RegisterRoutes(g httpx.Groups, repo repository.PartnerRepository, q queueport.Client, notifier shared.Notifier, sessions *auth.SessionManager, opts Options, logger *zap.Logger) {
	createCtl := controller.NewCreateInvitationController(usecase.NewCreateInvitationUseCase(repo, q, opts.BaseURL, opts.InvitationTTL, logger), logger)
	getCtl := controller.NewGetInvitationController(usecase.NewGetInvitationUseCase(repo), logger)
	acceptCtl := controller.NewAcceptInvitationController(usecase.NewAcceptInvitationUseCase(repo, opts.Register, notifier), sessions, logger)
	connectCtl := controller.NewConnectPartnerController(usecase.NewConnectPartnerUseCase(repo, notifier), logger)
	partnerCtl := controller.NewGetPartnerController(usecase.NewGetPartnerUseCase(repo), logger)
	unlinkCtl := controller.NewUnlinkPartnerController(usecase.NewUnlinkPartnerUseCase(repo, notifier), logger)

	g.Public.GET("/invitations/:token", getCtl.Handle())
	g.Public.POST("/invitations/:token/accept", acceptCtl.Handle())

	g.Private.POST("/invitations", createCtl.Handle())
	g.Private.POST("/invitations/:token/connect", connectCtl.Handle())
	g.Private.GET("/partner", partnerCtl.Handle())
	g.Private.DELETE("/partner", unlinkCtl.Handle())
}

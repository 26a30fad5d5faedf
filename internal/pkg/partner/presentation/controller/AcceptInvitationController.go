package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

// AcceptInvitationController registers the invitee and links the accounts.
// A session is issued whenever an account was created, even if linking lost
// a race, so the client can go straight to connect.
type AcceptInvitationController struct {
	UC       *usecase.AcceptInvitationUseCase
	Sessions *auth.SessionManager
	Logger   *zap.Logger
}

func NewAcceptInvitationController(uc *usecase.AcceptInvitationUseCase, sessions *auth.SessionManager, logger *zap.Logger) *AcceptInvitationController {
	return &AcceptInvitationController{UC: uc, Sessions: sessions, Logger: logger}
}

type acceptInvitationRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

func (h *AcceptInvitationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req acceptInvitationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.AcceptInvitationInput{
			Token: c.Param("token"),
			Account: usecase.NewAccount{
				Username:    req.Username,
				Email:       req.Email,
				Password:    req.Password,
				DisplayName: req.DisplayName,
			},
		})
		if res != nil && res.UserID != "" {
			token, _, serr := h.Sessions.Issue(res.UserID)
			if serr == nil {
				h.Sessions.SetCookie(c, token)
			}
		}
		if err != nil {
			var extra gin.H
			if res != nil {
				extra = gin.H{"user_id": res.UserID}
			}
			respondRedeemError(c, h.Logger, err, extra)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user_id":        res.UserID,
			"partnership_id": res.Partnership.ID,
			"partner_id":     res.Partnership.Other(res.UserID),
		})
	}
}

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appreciation "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/appreciationtest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func TestAppreciations(t *testing.T) {
	s := sharedtest.NewServer(t)
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	rec := &sharedtest.Recorder{}
	RegisterRoutes(s.Groups, appreciationtest.NewRepository(), partners, rec, zap.NewNop())

	res := s.Do(t, http.MethodPost, "/api/appreciations", "alice", gin.H{"content": "Thanks for the coffee"})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	assert.Equal(t, []string{shared.EventNewAppreciation}, rec.Types("bob"))

	res = s.Do(t, http.MethodPost, "/api/appreciations", "single", gin.H{"content": "hello"})
	assert.Equal(t, http.StatusConflict, res.Code)

	var got []appreciation.Appreciation
	res = s.Do(t, http.MethodGet, "/api/appreciations", "bob", nil)
	sharedtest.Decode(t, res, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].FromUserID)

	res = s.Do(t, http.MethodGet, "/api/appreciations/sent", "alice", nil)
	sharedtest.Decode(t, res, &got)
	assert.Len(t, got, 1)

	res = s.Do(t, http.MethodGet, "/api/appreciations", "alice", nil)
	sharedtest.Decode(t, res, &got)
	assert.Empty(t, got)
}

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	aiadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/adapter"
	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ratelimit"
	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/messagetest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

type echoTransformer struct{}

func (echoTransformer) Transform(_ context.Context, req aiport.TransformRequest) (aiport.Transformation, error) {
	return aiport.Transformation{
		TransformedMessage:    "I feel " + req.Message,
		CommunicationElements: []string{"I-statement"},
		DeliveryTips:          []string{"Choose a calm moment"},
	}, nil
}

func newServer(t *testing.T, ai aiport.Transformer, limit gin.HandlerFunc) *sharedtest.Server {
	t.Helper()
	s := sharedtest.NewServer(t)
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	RegisterRoutes(s.Groups, messagetest.NewRepository(), ai, partners, &sharedtest.Recorder{}, limit, zap.NewNop())
	return s
}

func TestTransformEndpoint(t *testing.T) {
	s := newServer(t, echoTransformer{}, nil)

	rec := s.Do(t, http.MethodPost, "/api/transform", "alice", gin.H{"message": "ignored"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out aiport.Transformation
	sharedtest.Decode(t, rec, &out)
	assert.Equal(t, "I feel ignored", out.TransformedMessage)

	rec = s.Do(t, http.MethodPost, "/api/transform", "alice", gin.H{"message": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransformWithoutAPIKeyIs503(t *testing.T) {
	s := newServer(t, aiadapter.Unavailable{}, nil)
	rec := s.Do(t, http.MethodPost, "/api/transform", "alice", gin.H{"message": "hello"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTransformIsRateLimited(t *testing.T) {
	s := newServer(t, echoTransformer{}, ratelimit.New(1, 1).Middleware())

	rec := s.Do(t, http.MethodPost, "/api/transform", "alice", gin.H{"message": "one"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.Do(t, http.MethodPost, "/api/transform", "alice", gin.H{"message": "two"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = s.Do(t, http.MethodPost, "/api/transform", "bob", gin.H{"message": "three"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMessageAndResponseFlow(t *testing.T) {
	s := newServer(t, echoTransformer{}, nil)

	rec := s.Do(t, http.MethodPost, "/api/messages", "alice", gin.H{
		"original_message":       "you never call",
		"transformed_message":    "I miss hearing from you",
		"communication_elements": []string{"need"},
		"is_shared":              true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var m message.Message
	sharedtest.Decode(t, rec, &m)
	assert.Equal(t, []string{"need"}, m.CommunicationElements)
	assert.Equal(t, []string{}, m.DeliveryTips)

	rec = s.Do(t, http.MethodGet, "/api/messages/partner", "bob", nil)
	var partnerMsgs []message.Message
	sharedtest.Decode(t, rec, &partnerMsgs)
	require.Len(t, partnerMsgs, 1)

	rec = s.Do(t, http.MethodPost, "/api/messages/"+m.ID+"/responses", "bob", gin.H{"content": "I hear you"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.Do(t, http.MethodPost, "/api/messages/"+m.ID+"/responses", "alice", gin.H{"content": "me too"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.Do(t, http.MethodGet, "/api/messages/"+m.ID+"/responses", "alice", nil)
	var responses []message.Response
	sharedtest.Decode(t, rec, &responses)
	require.Len(t, responses, 1)
	assert.Equal(t, "bob", responses[0].UserID)

	rec = s.Do(t, http.MethodGet, "/api/messages/"+m.ID, "mallory", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	milestone "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/milestonetest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func TestMilestoneTimeline(t *testing.T) {
	s := sharedtest.NewServer(t)
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	rec := &sharedtest.Recorder{}
	RegisterRoutes(s.Groups, milestonetest.NewRepository(), partners, rec, zap.NewNop())

	res := s.Do(t, http.MethodPost, "/api/milestones", "alice", gin.H{"title": "First date", "kind": "first", "occurred_on": "2019-06-01"})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	var first milestone.Milestone
	sharedtest.Decode(t, res, &first)
	assert.Equal(t, "2019-06-01", first.OccurredOn.String())
	assert.Equal(t, []string{shared.EventNewMilestone}, rec.Types("bob"))

	res = s.Do(t, http.MethodPost, "/api/milestones", "bob", gin.H{"title": "Moved in", "occurred_on": "2021-03-15"})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	res = s.Do(t, http.MethodPost, "/api/milestones", "bob", gin.H{"title": "Bad", "occurred_on": "15/03/2021"})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.Do(t, http.MethodPost, "/api/milestones", "bob", gin.H{"title": "Bad", "kind": "party", "occurred_on": "2021-03-15"})
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = s.Do(t, http.MethodGet, "/api/milestones", "alice", nil)
	var timeline []milestone.Milestone
	sharedtest.Decode(t, res, &timeline)
	require.Len(t, timeline, 2)
	assert.Equal(t, "Moved in", timeline[0].Title)
	assert.Equal(t, "other", timeline[0].Kind)

	res = s.Do(t, http.MethodDelete, "/api/milestones/"+first.ID, "bob", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	res = s.Do(t, http.MethodDelete, "/api/milestones/"+first.ID, "alice", nil)
	assert.Equal(t, http.StatusNoContent, res.Code)
}

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	exercise "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/exercise/exercisetest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func TestExerciseEndpoints(t *testing.T) {
	s := sharedtest.NewServer(t)
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	RegisterRoutes(s.Groups, exercisetest.NewRepository(), partners, &sharedtest.Recorder{}, zap.NewNop())

	rec := s.Do(t, http.MethodGet, "/api/exercises/templates", "alice", nil)
	var templates []exercise.Template
	sharedtest.Decode(t, rec, &templates)
	assert.Len(t, templates, 3)

	rec = s.Do(t, http.MethodPost, "/api/exercises", "alice", gin.H{"template": "repair_conversation"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var e exercise.Exercise
	sharedtest.Decode(t, rec, &e)

	rec = s.Do(t, http.MethodPatch, "/api/exercises/"+e.ID+"/progress", "bob", gin.H{"step": 2})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.Do(t, http.MethodPatch, "/api/exercises/"+e.ID+"/progress", "bob", gin.H{"response": "missing step"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for step := range e.Steps {
		rec = s.Do(t, http.MethodPatch, "/api/exercises/"+e.ID+"/progress", "bob", gin.H{"step": step, "response": "done"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	sharedtest.Decode(t, rec, &e)
	assert.Equal(t, exercise.StatusCompleted, e.Status)

	rec = s.Do(t, http.MethodGet, "/api/exercises/"+e.ID, "stranger", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

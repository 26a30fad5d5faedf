package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/journaltest"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

func newServer(t *testing.T) *sharedtest.Server {
	t.Helper()
	s := sharedtest.NewServer(t)
	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	RegisterRoutes(s.Groups, journaltest.NewRepository(), partners, &sharedtest.Recorder{}, zap.NewNop())
	return s
}

func TestJournalLifecycle(t *testing.T) {
	s := newServer(t)

	rec := s.Do(t, http.MethodPost, "/api/journal", "alice", gin.H{"title": "Walk", "content": "Nice evening", "is_shared": true})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created journal.Entry
	sharedtest.Decode(t, rec, &created)
	assert.Equal(t, "alice", created.UserID)

	s.Do(t, http.MethodPost, "/api/journal", "alice", gin.H{"title": "Secret", "content": "Mine"})

	rec = s.Do(t, http.MethodGet, "/api/journal/shared", "bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sharedEntries []journal.Entry
	sharedtest.Decode(t, rec, &sharedEntries)
	require.Len(t, sharedEntries, 1)
	assert.Equal(t, "Walk", sharedEntries[0].Title)

	rec = s.Do(t, http.MethodGet, "/api/journal/"+created.ID, "bob", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.Do(t, http.MethodPatch, "/api/journal/"+created.ID, "alice", gin.H{"is_shared": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.Do(t, http.MethodGet, "/api/journal/shared", "bob", nil)
	sharedtest.Decode(t, rec, &sharedEntries)
	assert.Empty(t, sharedEntries)

	rec = s.Do(t, http.MethodDelete, "/api/journal/"+created.ID, "alice", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.Do(t, http.MethodGet, "/api/journal", "alice", nil)
	var own []journal.Entry
	sharedtest.Decode(t, rec, &own)
	assert.Len(t, own, 1)
}

func TestJournalValidation(t *testing.T) {
	s := newServer(t)

	rec := s.Do(t, http.MethodPost, "/api/journal", "alice", gin.H{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.Do(t, http.MethodGet, "/api/journal", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJournalMalformedIDIsNotFound(t *testing.T) {
	s := newServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		var body any
		if method == http.MethodPatch {
			body = gin.H{"title": "x"}
		}
		rec := s.Do(t, method, "/api/journal/abc", "alice", body)
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.Contains(t, rec.Body.String(), "journal: entry not found", method)
	}
}

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidfun/internal/application"
	"kidfun/internal/domain"
	"kidfun/internal/domain/entities"
)

// keyTranslator echoes the message key so tests can assert on it directly.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

type fakeSessions struct {
	sessions map[string]string
}

func (f fakeSessions) FindByUserID(context.Context, string) (*entities.Profile, error) {
	return nil, domain.ErrParticipantNotFound
}

func (f fakeSessions) FindByUserIDs(context.Context, []string) (map[string]entities.Profile, error) {
	return map[string]entities.Profile{}, nil
}

func (f fakeSessions) FindSession(_ context.Context, token string) (*entities.Session, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return &entities.Session{Token: token, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// fakeUseCase records the arguments of the last call and returns canned
// results, so handler tests stay about routing, auth and status codes.
type fakeUseCase struct {
	lastUserID   string
	lastThreadID uint
	err          error
	view         *application.ThreadView
}

func (f *fakeUseCase) CreateThread(_ context.Context, organizerID, _ string, _ []string, _ application.CreateThreadOptions) (uint, error) {
	f.lastUserID = organizerID
	return 7, f.err
}

func (f *fakeUseCase) ProposeTime(_ context.Context, threadID uint, proposerID string, _ time.Time, _ string) (uint, error) {
	f.lastUserID = proposerID
	f.lastThreadID = threadID
	return 11, f.err
}

func (f *fakeUseCase) AcceptProposal(_ context.Context, proposalID uint, accepterID string) error {
	f.lastUserID = accepterID
	f.lastThreadID = proposalID
	return f.err
}

func (f *fakeUseCase) UpdateRSVP(_ context.Context, threadID uint, userID, _ string, _ []string) error {
	f.lastUserID = userID
	f.lastThreadID = threadID
	return f.err
}

func (f *fakeUseCase) InviteParticipant(_ context.Context, threadID uint, organizerID, _ string) error {
	f.lastUserID = organizerID
	f.lastThreadID = threadID
	return f.err
}

func (f *fakeUseCase) PostMessage(_ context.Context, threadID uint, userID, _ string) error {
	f.lastUserID = userID
	f.lastThreadID = threadID
	return f.err
}

func (f *fakeUseCase) CancelThread(_ context.Context, threadID uint, userID string) error {
	f.lastUserID = userID
	f.lastThreadID = threadID
	return f.err
}

func (f *fakeUseCase) CompleteThread(_ context.Context, threadID uint, userID string) error {
	f.lastUserID = userID
	f.lastThreadID = threadID
	return f.err
}

func (f *fakeUseCase) GetThread(_ context.Context, threadID uint, userID string) (*application.ThreadView, error) {
	f.lastUserID = userID
	f.lastThreadID = threadID
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeUseCase) ListThreads(_ context.Context, userID string) ([]application.ThreadView, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return []application.ThreadView{}, nil
}

func (f *fakeUseCase) GetMyParticipation(_ context.Context, threadID uint, userID string) (*entities.Participant, error) {
	f.lastUserID = userID
	f.lastThreadID = threadID
	if f.err != nil {
		return nil, f.err
	}
	return &entities.Participant{UserID: userID, Role: domain.RoleInvited, RSVPStatus: domain.RSVPPending}, nil
}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	handler := NewHandler(uc, keyTranslator{}, fakeSessions{
		sessions: map[string]string{"tok-u1": "u1"},
	}, NewHub())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, router *mux.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	rec := doRequest(t, router, http.MethodGet, "/v1/threads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/v1/threads", "bad-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "error.unauthenticated")
}

func TestCreateThreadHandler(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	rec := doRequest(t, router, http.MethodPost, "/v1/threads", "tok-u1", map[string]any{
		"activity_name":   "Soccer",
		"invite_user_ids": []string{"u2"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "u1", uc.lastUserID)

	var resp struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "thread.created", resp.Message)
}

func TestCreateThreadHandlerBadJSON(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})
	req := httptest.NewRequest(http.MethodPost, "/v1/threads", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer tok-u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProposeTimeHandler(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	rec := doRequest(t, router, http.MethodPost, "/v1/threads/5/proposals", "tok-u1", map[string]any{
		"date": time.Now().Add(24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, uint(5), uc.lastThreadID)

	rec = doRequest(t, router, http.MethodPost, "/v1/threads/0/proposals", "tok-u1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptProposalHandler(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	rec := doRequest(t, router, http.MethodPost, "/v1/proposals/3/accept", "tok-u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(3), uc.lastThreadID)
	assert.Equal(t, "u1", uc.lastUserID)
}

func TestDomainErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		key    string
	}{
		{domain.ErrThreadNotFound, http.StatusNotFound, "error.thread_not_found"},
		{domain.ErrNotParticipant, http.StatusForbidden, "error.not_participant"},
		{domain.ErrNotOrganizer, http.StatusForbidden, "error.not_organizer"},
		{domain.ErrProposalNotOpen, http.StatusConflict, "error.proposal_not_open"},
		{domain.ErrThreadLocked, http.StatusConflict, "error.thread_locked"},
		{domain.ErrThreadNotScheduled, http.StatusConflict, "error.thread_not_scheduled"},
		{domain.ErrDateTimeInPast, http.StatusBadRequest, "error.datetime_in_past"},
		{domain.ErrInvalidRSVP, http.StatusBadRequest, "error.invalid_rsvp"},
		{domain.ErrParticipantExists, http.StatusConflict, "error.participant_exists"},
	}
	for _, tc := range cases {
		router := newTestRouter(&fakeUseCase{err: tc.err})
		rec := doRequest(t, router, http.MethodPost, "/v1/threads/1/cancel", "tok-u1", nil)
		assert.Equal(t, tc.status, rec.Code, tc.err)
		assert.Contains(t, rec.Body.String(), tc.key, tc.err)
	}
}

func TestUpdateRSVPHandler(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	rec := doRequest(t, router, http.MethodPut, "/v1/threads/9/rsvp", "tok-u1", map[string]any{
		"status":            "going",
		"children_bringing": []string{"kid-a", "kid-b"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(9), uc.lastThreadID)
	assert.Contains(t, rec.Body.String(), "thread.rsvp_updated")
}

func TestGetThreadHandler(t *testing.T) {
	uc := &fakeUseCase{view: &application.ThreadView{
		ID:           4,
		ActivityName: "Museum",
		Status:       domain.ThreadStatusProposing,
	}}
	router := newTestRouter(uc)

	rec := doRequest(t, router, http.MethodGet, "/v1/threads/4", "tok-u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view application.ThreadView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, uint(4), view.ID)
	assert.Equal(t, "Museum", view.ActivityName)
}

func TestGetParticipationHandler(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	rec := doRequest(t, router, http.MethodGet, "/v1/threads/2/participation", "tok-u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.RSVPPending)
}

func TestBearerTokenSources(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	// Query-parameter token is accepted too.
	req := httptest.NewRequest(http.MethodGet, "/v1/threads?token=tok-u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

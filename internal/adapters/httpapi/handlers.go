package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"kidfun/internal/application"
	"kidfun/internal/ports/input"
	"kidfun/internal/ports/output"
)

// Handler serves the coordination API using the use-case port.
type Handler struct {
	coordination input.CoordinationUseCase
	translator   output.T
	profiles     output.ProfileRepository
	hub          *Hub
}

func NewHandler(
	coordination input.CoordinationUseCase,
	translator output.T,
	profiles output.ProfileRepository,
	hub *Hub,
) *Handler {
	return &Handler{
		coordination: coordination,
		translator:   translator,
		profiles:     profiles,
		hub:          hub,
	}
}

// RegisterRoutes registers all coordination routes on the provided router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/threads", h.requireAuth(h.createThread)).Methods(http.MethodPost)
	v1.HandleFunc("/threads", h.requireAuth(h.listThreads)).Methods(http.MethodGet)
	v1.HandleFunc("/threads/{id}", h.requireAuth(h.getThread)).Methods(http.MethodGet)
	v1.HandleFunc("/threads/{id}/proposals", h.requireAuth(h.proposeTime)).Methods(http.MethodPost)
	v1.HandleFunc("/proposals/{id}/accept", h.requireAuth(h.acceptProposal)).Methods(http.MethodPost)
	v1.HandleFunc("/threads/{id}/rsvp", h.requireAuth(h.updateRSVP)).Methods(http.MethodPut)
	v1.HandleFunc("/threads/{id}/participants", h.requireAuth(h.inviteParticipant)).Methods(http.MethodPost)
	v1.HandleFunc("/threads/{id}/messages", h.requireAuth(h.postMessage)).Methods(http.MethodPost)
	v1.HandleFunc("/threads/{id}/cancel", h.requireAuth(h.cancelThread)).Methods(http.MethodPost)
	v1.HandleFunc("/threads/{id}/complete", h.requireAuth(h.completeThread)).Methods(http.MethodPost)
	v1.HandleFunc("/threads/{id}/participation", h.requireAuth(h.getParticipation)).Methods(http.MethodGet)
	v1.HandleFunc("/ws", h.requireAuth(h.handleWS)).Methods(http.MethodGet)
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

type createThreadRequest struct {
	ActivityName  string     `json:"activity_name"`
	InviteUserIDs []string   `json:"invite_user_ids"`
	ProposedDate  *time.Time `json:"proposed_date,omitempty"`
	ProposedNotes string     `json:"proposed_notes,omitempty"`
	ProviderID    string     `json:"provider_id,omitempty"`
	ProviderName  string     `json:"provider_name,omitempty"`
	ProviderURL   string     `json:"provider_url,omitempty"`
	Location      string     `json:"location,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

func (h *Handler) createThread(w http.ResponseWriter, r *http.Request) {
	var req createThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	threadID, err := h.coordination.CreateThread(r.Context(), UserIDFromContext(r.Context()), req.ActivityName, req.InviteUserIDs, application.CreateThreadOptions{
		ProposedDate:  req.ProposedDate,
		ProposedNotes: req.ProposedNotes,
		ProviderID:    req.ProviderID,
		ProviderName:  req.ProviderName,
		ProviderURL:   req.ProviderURL,
		Location:      req.Location,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("create_thread").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"id": threadID,
		"message": h.translator.T(localeFrom(r), "thread.created", map[string]any{
			"ActivityName": req.ActivityName,
		}),
	})
}

func (h *Handler) listThreads(w http.ResponseWriter, r *http.Request) {
	views, err := h.coordination.ListThreads(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"threads": views})
}

func (h *Handler) getThread(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	view, err := h.coordination.GetThread(r.Context(), threadID, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type proposeTimeRequest struct {
	Date  time.Time `json:"date"`
	Notes string    `json:"notes,omitempty"`
}

func (h *Handler) proposeTime(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	var req proposeTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	proposalID, err := h.coordination.ProposeTime(r.Context(), threadID, UserIDFromContext(r.Context()), req.Date, req.Notes)
	if err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("propose_time").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{"id": proposalID})
}

func (h *Handler) acceptProposal(w http.ResponseWriter, r *http.Request) {
	proposalID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid proposal id"})
		return
	}
	if err := h.coordination.AcceptProposal(r.Context(), proposalID, UserIDFromContext(r.Context())); err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("accept_proposal").Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"accepted": true})
}

type updateRSVPRequest struct {
	Status           string   `json:"status"`
	ChildrenBringing []string `json:"children_bringing,omitempty"`
}

func (h *Handler) updateRSVP(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	var req updateRSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := h.coordination.UpdateRSVP(r.Context(), threadID, UserIDFromContext(r.Context()), req.Status, req.ChildrenBringing); err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("update_rsvp").Inc()
	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.translator.T(localeFrom(r), "thread.rsvp_updated", map[string]any{
			"Status": req.Status,
		}),
	})
}

type inviteRequest struct {
	UserID string `json:"user_id"`
}

func (h *Handler) inviteParticipant(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := h.coordination.InviteParticipant(r.Context(), threadID, UserIDFromContext(r.Context()), req.UserID); err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("invite_participant").Inc()
	writeJSON(w, http.StatusCreated, map[string]bool{"invited": true})
}

type postMessageRequest struct {
	Body string `json:"body"`
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if err := h.coordination.PostMessage(r.Context(), threadID, UserIDFromContext(r.Context()), req.Body); err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("post_message").Inc()
	writeJSON(w, http.StatusCreated, map[string]bool{"posted": true})
}

func (h *Handler) cancelThread(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	if err := h.coordination.CancelThread(r.Context(), threadID, UserIDFromContext(r.Context())); err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("cancel_thread").Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

func (h *Handler) completeThread(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	if err := h.coordination.CompleteThread(r.Context(), threadID, UserIDFromContext(r.Context())); err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	operationsTotal.WithLabelValues("complete_thread").Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"completed": true})
}

func (h *Handler) getParticipation(w http.ResponseWriter, r *http.Request) {
	threadID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid thread id"})
		return
	}
	participant, err := h.coordination.GetMyParticipation(r.Context(), threadID, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, h.translator, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":           participant.UserID,
		"role":              participant.Role,
		"rsvp_status":       participant.RSVPStatus,
		"children_bringing": participant.ChildrenBringing,
	})
}

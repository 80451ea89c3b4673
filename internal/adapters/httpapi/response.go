package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"kidfun/internal/domain"
	"kidfun/internal/ports/output"
)

// errorStatus maps a domain error to an HTTP status and an i18n message key.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "error.unauthenticated"
	case errors.Is(err, domain.ErrThreadNotFound):
		return http.StatusNotFound, "error.thread_not_found"
	case errors.Is(err, domain.ErrProposalNotFound):
		return http.StatusNotFound, "error.proposal_not_found"
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound, "error.participant_not_found"
	case errors.Is(err, domain.ErrNotParticipant):
		return http.StatusForbidden, "error.not_participant"
	case errors.Is(err, domain.ErrNotOrganizer):
		return http.StatusForbidden, "error.not_organizer"
	case errors.Is(err, domain.ErrActivityNameEmpty):
		return http.StatusBadRequest, "error.activity_name_empty"
	case errors.Is(err, domain.ErrDateTimeInPast):
		return http.StatusBadRequest, "error.datetime_in_past"
	case errors.Is(err, domain.ErrInvalidRSVP):
		return http.StatusBadRequest, "error.invalid_rsvp"
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, "error.empty_message"
	case errors.Is(err, domain.ErrParticipantExists):
		return http.StatusConflict, "error.participant_exists"
	case errors.Is(err, domain.ErrProposalNotOpen):
		return http.StatusConflict, "error.proposal_not_open"
	case errors.Is(err, domain.ErrThreadClosed):
		return http.StatusConflict, "error.thread_closed"
	case errors.Is(err, domain.ErrThreadLocked):
		return http.StatusConflict, "error.thread_locked"
	case errors.Is(err, domain.ErrThreadNotScheduled):
		return http.StatusConflict, "error.thread_not_scheduled"
	}
	return http.StatusInternalServerError, "error.internal"
}

// localeFrom extracts the preferred language tag from Accept-Language.
func localeFrom(r *http.Request) string {
	raw := r.Header.Get("Accept-Language")
	if raw == "" {
		return ""
	}
	raw = strings.Split(raw, ",")[0]
	raw = strings.Split(raw, ";")[0]
	return strings.TrimSpace(raw)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("httpapi: write response: %v", err)
	}
}

// writeError converts err into a localized, user-displayable error body.
// Internal detail stays in the server log.
func writeError(w http.ResponseWriter, r *http.Request, translator output.T, err error) {
	status, key := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("httpapi: %s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, map[string]string{
		"error": translator.T(localeFrom(r), key, nil),
	})
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
	"github.com/finmetrics/credit-gateway/internal/core/ports"
)

type Router struct {
	submitter ports.SubmissionService
	app       ports.ApplicationReader
	limiter   *rateLimiter
}

func NewRouter(submitter ports.SubmissionService, app ports.ApplicationReader, rps float64, burst int) *Router {
	return &Router{
		submitter: submitter,
		app:       app,
		limiter:   newRateLimiter(rps, burst),
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/submissions", rt.submit)
	mux.HandleFunc("/v1/application", rt.application)
	mux.HandleFunc("/v1/application/draft", rt.updateDraft)
	return requestIDMiddleware(accessLogMiddleware(rt.limiter.middleware(mux)))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request body must be a JSON object of profile fields"})
		return
	}

	outcome, err := rt.submitter.Submit(r.Context(), profile)
	if err != nil {
		var missing *domain.MissingFieldError
		if errors.As(err, &missing) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": missing.Error(),
				"field": missing.Field,
			})
			return
		}
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, newOutcomeView(outcome))
}

func (rt *Router) application(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, newStateView(rt.app.Snapshot()))
}

func (rt *Router) updateDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request body must be a JSON object of profile fields"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"draft": rt.app.UpdateDraft(fields)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"certstudy-service/internal/domain"
	"certstudy-service/internal/quiz"
	"certstudy-service/internal/render"
)

// APIHandler serves the read-only content endpoints: course module listings
// and rendered summary views. A missing document is a 404 with a typed
// payload, distinct from a load failure.
type APIHandler struct {
	service *quiz.Service
}

func NewAPIHandler(service *quiz.Service) *APIHandler {
	return &APIHandler{service: service}
}

func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/courses/{course}/modules", h.handleModules)
	mux.HandleFunc("GET /api/courses/{course}/modules/{moduleId}/summary", h.handleSummary)
}

func (h *APIHandler) handleModules(w http.ResponseWriter, r *http.Request) {
	course := r.PathValue("course")
	modules, err := h.service.ModuleIndex(r.Context(), course)
	if err != nil {
		h.writeLoadError(w, err, domain.ErrCourseNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, modules)
}

func (h *APIHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	course := r.PathValue("course")
	moduleID := r.PathValue("moduleId")
	doc, err := h.service.Summary(r.Context(), course, moduleID)
	if err != nil {
		h.writeLoadError(w, err, domain.ErrSummaryNotFound, "summary not found")
		return
	}
	writeJSON(w, http.StatusOK, render.RenderSummary(doc, "/"+course))
}

func (h *APIHandler) writeLoadError(w http.ResponseWriter, err, missing error, message string) {
	if errors.Is(err, missing) || errors.Is(err, domain.ErrCourseNotFound) {
		writeJSON(w, http.StatusNotFound, errorPayload{Message: message})
		return
	}
	log.Printf("content load failed: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorPayload{Message: "failed to load content"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

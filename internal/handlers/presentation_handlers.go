package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
	"github.com/yadi09/Slide-Editor-Foundation/internal/services"
)

// PresentationHandler handles HTTP requests for the slide sequence
type PresentationHandler struct {
	store *services.DocumentStore
	hub   *services.Hub
}

// NewPresentationHandler creates a new presentation handler
func NewPresentationHandler(store *services.DocumentStore, hub *services.Hub) *PresentationHandler {
	return &PresentationHandler{
		store: store,
		hub:   hub,
	}
}

// GetPresentation returns the full presentation state
// GET /api/presentation
func (ph *PresentationHandler) GetPresentation(w http.ResponseWriter, r *http.Request) {
	state := ph.store.State()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// AddSlideRequest represents a request to add a slide
type AddSlideRequest struct {
	Template *models.Slide `json:"template,omitempty"` // Optional: slide template to instantiate
}

// AddSlide appends a slide and selects it. With no body or no template the
// new slide is empty.
// POST /api/presentation/slides
func (ph *PresentationHandler) AddSlide(w http.ResponseWriter, r *http.Request) {
	var req AddSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if _, err := ph.store.AddSlide(req.Template); err != nil {
		if errors.Is(err, services.ErrInvalidTemplate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Failed to add slide: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	state := ph.store.State()
	ph.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// DeleteSlide removes a slide
// DELETE /api/presentation/slides/{slideId}
func (ph *PresentationHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]

	if slideID == "" {
		http.Error(w, "Slide ID is required", http.StatusBadRequest)
		return
	}

	ph.store.DeleteSlide(slideID)

	state := ph.store.State()
	ph.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// DuplicateSlide inserts a copy of a slide right after it
// POST /api/presentation/slides/{slideId}/duplicate
func (ph *PresentationHandler) DuplicateSlide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]

	if slideID == "" {
		http.Error(w, "Slide ID is required", http.StatusBadRequest)
		return
	}

	if _, ok := ph.store.DuplicateSlide(slideID); !ok {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return
	}

	state := ph.store.State()
	ph.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// ReorderSlidesRequest represents a request to move a slide
type ReorderSlidesRequest struct {
	FromIndex *int `json:"fromIndex"`
	ToIndex   *int `json:"toIndex"`
}

// ReorderSlides moves the slide at fromIndex to toIndex
// POST /api/presentation/slides/reorder
func (ph *PresentationHandler) ReorderSlides(w http.ResponseWriter, r *http.Request) {
	var req ReorderSlidesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.FromIndex == nil || req.ToIndex == nil {
		http.Error(w, "fromIndex and toIndex are required", http.StatusBadRequest)
		return
	}

	if err := ph.store.ReorderSlides(*req.FromIndex, *req.ToIndex); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := ph.store.State()
	ph.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// SetCurrentSlideRequest represents a request to switch the selected slide
type SetCurrentSlideRequest struct {
	SlideID string `json:"slideId"`
}

// SetCurrentSlide switches the selected slide
// PUT /api/presentation/current-slide
func (ph *PresentationHandler) SetCurrentSlide(w http.ResponseWriter, r *http.Request) {
	var req SetCurrentSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.SlideID == "" {
		http.Error(w, "slideId is required", http.StatusBadRequest)
		return
	}

	ph.store.SetCurrentSlide(req.SlideID)

	state := ph.store.State()
	ph.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

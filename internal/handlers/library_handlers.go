package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yadi09/Slide-Editor-Foundation/internal/persistence"
	"github.com/yadi09/Slide-Editor-Foundation/internal/services"
)

// LibraryHandler handles HTTP requests for the saved-slide library
type LibraryHandler struct {
	repo  *persistence.Repository
	store *services.DocumentStore
	hub   *services.Hub
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(repo *persistence.Repository, store *services.DocumentStore, hub *services.Hub) *LibraryHandler {
	return &LibraryHandler{
		repo:  repo,
		store: store,
		hub:   hub,
	}
}

// ListSavedSlides returns every saved slide
// GET /api/library
func (lh *LibraryHandler) ListSavedSlides(w http.ResponseWriter, r *http.Request) {
	saved := lh.repo.SavedSlides()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

// SaveSlideRequest represents a request to save a live slide to the library
type SaveSlideRequest struct {
	SlideID   string `json:"slideId"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"` // Optional: data-URL preview captured by the UI
}

// SaveSlide snapshots a slide from the presentation under a unique name
// POST /api/library
func (lh *LibraryHandler) SaveSlide(w http.ResponseWriter, r *http.Request) {
	var req SaveSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.SlideID == "" {
		http.Error(w, "slideId is required", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	slide, ok := lh.store.Slide(req.SlideID)
	if !ok {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return
	}

	saved, err := lh.repo.SaveSlide(slide, req.Name, req.Thumbnail)
	if err != nil {
		if errors.Is(err, persistence.ErrNameTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Printf("Failed to save slide to library: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

// DeleteSavedSlide removes a slide from the library
// DELETE /api/library/{savedSlideId}
func (lh *LibraryHandler) DeleteSavedSlide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	savedSlideID := vars["savedSlideId"]

	if savedSlideID == "" {
		http.Error(w, "Saved slide ID is required", http.StatusBadRequest)
		return
	}

	if err := lh.repo.DeleteSavedSlide(savedSlideID); err != nil {
		log.Printf("Failed to delete saved slide: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// InsertSavedSlide appends a library slide to the presentation with fresh
// ids and selects it
// POST /api/library/{savedSlideId}/insert
func (lh *LibraryHandler) InsertSavedSlide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	savedSlideID := vars["savedSlideId"]

	if savedSlideID == "" {
		http.Error(w, "Saved slide ID is required", http.StatusBadRequest)
		return
	}

	saved, ok := lh.repo.SavedSlideByID(savedSlideID)
	if !ok {
		http.Error(w, "Saved slide not found", http.StatusNotFound)
		return
	}

	if _, err := lh.store.AddSlide(&saved.Slide); err != nil {
		log.Printf("Failed to insert saved slide: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	state := lh.store.State()
	lh.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
	"github.com/yadi09/Slide-Editor-Foundation/internal/population"
	"github.com/yadi09/Slide-Editor-Foundation/internal/services"
)

// TemplateHandler handles HTTP requests for slide templates and population
type TemplateHandler struct {
	store *services.DocumentStore
	hub   *services.Hub
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(store *services.DocumentStore, hub *services.Hub) *TemplateHandler {
	return &TemplateHandler{
		store: store,
		hub:   hub,
	}
}

// ListTemplates returns the built-in slide templates
// GET /api/templates
func (th *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates := models.Templates()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(templates)
}

// PopulateSlide fills a slide's placeholder tokens from listing data. The
// population itself is pure; the changed contents are then merged back onto
// the live slide element by element.
// POST /api/presentation/slides/{slideId}/populate
func (th *TemplateHandler) PopulateSlide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]

	if slideID == "" {
		http.Error(w, "Slide ID is required", http.StatusBadRequest)
		return
	}

	var listing models.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	slide, ok := th.store.Slide(slideID)
	if !ok {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return
	}

	populated := population.Populate(slide, listing)
	for i, el := range populated.Elements {
		if el.Content == slide.Elements[i].Content {
			continue
		}
		content := el.Content
		th.store.UpdateElement(slideID, el.ID, models.ElementUpdate{Content: &content})
	}

	state := th.store.State()
	th.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

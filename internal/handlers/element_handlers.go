package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yadi09/Slide-Editor-Foundation/internal/geometry"
	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
	"github.com/yadi09/Slide-Editor-Foundation/internal/services"
)

// ElementHandler handles HTTP requests for slide elements
type ElementHandler struct {
	store *services.DocumentStore
	hub   *services.Hub
}

// NewElementHandler creates a new element handler
func NewElementHandler(store *services.DocumentStore, hub *services.Hub) *ElementHandler {
	return &ElementHandler{
		store: store,
		hub:   hub,
	}
}

// AddElement adds an element to a slide and selects it. Elements arriving
// without an id get one assigned.
// POST /api/presentation/slides/{slideId}/elements
func (eh *ElementHandler) AddElement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]

	if slideID == "" {
		http.Error(w, "Slide ID is required", http.StatusBadRequest)
		return
	}

	var element models.SlideElement
	if err := json.NewDecoder(r.Body).Decode(&element); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if !element.Type.Valid() {
		http.Error(w, "Invalid element type", http.StatusBadRequest)
		return
	}

	eh.store.AddElement(slideID, element)

	state := eh.store.State()
	eh.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// UpdateElementRequest represents a partial element update. Only the fields
// present in the body change; snapTo optionally snaps the supplied geometry
// to a grid before the merge.
type UpdateElementRequest struct {
	models.ElementUpdate
	SnapTo *float64 `json:"snapTo,omitempty"`
}

// UpdateElement merges a partial update onto an element
// PATCH /api/presentation/slides/{slideId}/elements/{elementId}
func (eh *ElementHandler) UpdateElement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]
	elementID := vars["elementId"]

	if slideID == "" || elementID == "" {
		http.Error(w, "Slide ID and element ID are required", http.StatusBadRequest)
		return
	}

	var req UpdateElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Type != nil && !req.Type.Valid() {
		http.Error(w, "Invalid element type", http.StatusBadRequest)
		return
	}

	if req.SnapTo != nil {
		grid := *req.SnapTo
		if req.X != nil {
			x := geometry.Snap(*req.X, grid)
			req.X = &x
		}
		if req.Y != nil {
			y := geometry.Snap(*req.Y, grid)
			req.Y = &y
		}
		if req.Width != nil {
			width := geometry.Snap(*req.Width, grid)
			req.Width = &width
		}
		if req.Height != nil {
			height := geometry.Snap(*req.Height, grid)
			req.Height = &height
		}
	}

	eh.store.UpdateElement(slideID, elementID, req.ElementUpdate)

	state := eh.store.State()
	eh.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// DeleteElement removes an element from a slide
// DELETE /api/presentation/slides/{slideId}/elements/{elementId}
func (eh *ElementHandler) DeleteElement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]
	elementID := vars["elementId"]

	if slideID == "" || elementID == "" {
		http.Error(w, "Slide ID and element ID are required", http.StatusBadRequest)
		return
	}

	eh.store.DeleteElement(slideID, elementID)

	state := eh.store.State()
	eh.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// SetSelectedElementRequest represents a selection change. An empty
// elementId clears the selection.
type SetSelectedElementRequest struct {
	ElementID string `json:"elementId"`
}

// SetSelectedElement changes or clears the selected element
// PUT /api/presentation/selected-element
func (eh *ElementHandler) SetSelectedElement(w http.ResponseWriter, r *http.Request) {
	var req SetSelectedElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	eh.store.SetSelectedElement(req.ElementID)

	state := eh.store.State()
	eh.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// BringToFront stacks an element above all others on its slide
// POST /api/presentation/slides/{slideId}/elements/{elementId}/bring-to-front
func (eh *ElementHandler) BringToFront(w http.ResponseWriter, r *http.Request) {
	eh.restack(w, r, true)
}

// SendToBack stacks an element below all others on its slide
// POST /api/presentation/slides/{slideId}/elements/{elementId}/send-to-back
func (eh *ElementHandler) SendToBack(w http.ResponseWriter, r *http.Request) {
	eh.restack(w, r, false)
}

func (eh *ElementHandler) restack(w http.ResponseWriter, r *http.Request, toFront bool) {
	vars := mux.Vars(r)
	slideID := vars["slideId"]
	elementID := vars["elementId"]

	if slideID == "" || elementID == "" {
		http.Error(w, "Slide ID and element ID are required", http.StatusBadRequest)
		return
	}

	if toFront {
		eh.store.BringToFront(slideID, elementID)
	} else {
		eh.store.SendToBack(slideID, elementID)
	}

	state := eh.store.State()
	eh.hub.BroadcastState(state)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// Package persistence serializes the editor's two collections (the live
// presentation and the saved-slide library) into the keyed blob store, and
// validates their shape on the way back out. Reads never trust stored data:
// anything that does not look like the expected collection is discarded
// wholesale and the caller falls back to its default state.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
	"github.com/yadi09/Slide-Editor-Foundation/internal/storage"
)

// Fixed storage keys for the two persisted collections
const (
	presentationKey = "presentation"
	savedSlidesKey  = "saved-slides"
)

// Repository reads and writes the persisted collections. Writes run under
// the mutex for the whole load-modify-save sequence, so concurrent library
// updates cannot interleave.
type Repository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRepository creates a repository over the given blob store
func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// SavePresentation replaces the stored slide sequence. Slides are cloned
// before serialization, which also normalizes a nil element list to an empty
// one, so the stored document only ever carries the model's defined fields.
func (r *Repository) SavePresentation(slides []models.Slide) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sanitized := make([]models.Slide, len(slides))
	for i, slide := range slides {
		sanitized[i] = slide.Clone()
	}

	data, err := json.MarshalIndent(sanitized, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize presentation: %w", err)
	}
	if err := r.store.Set(presentationKey, data); err != nil {
		return fmt.Errorf("failed to store presentation: %w", err)
	}
	return nil
}

// LoadPresentation reads the stored slide sequence. It returns ok=false when
// nothing is stored or when the stored value fails shape validation: the
// value must parse as an array and every slide must carry a string id and an
// elements array. A partially valid document is never returned.
func (r *Repository) LoadPresentation() ([]models.Slide, bool) {
	data, found, err := r.store.Get(presentationKey)
	if err != nil {
		log.Printf("Failed to read stored presentation: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var slides []models.Slide
	if err := json.Unmarshal(data, &slides); err != nil {
		log.Printf("Failed to parse stored presentation, discarding: %v", err)
		return nil, false
	}
	if slides == nil {
		log.Printf("Stored presentation is not an array, discarding")
		return nil, false
	}
	for _, slide := range slides {
		if !slide.WellFormed() {
			log.Printf("Stored presentation contains a malformed slide, discarding")
			return nil, false
		}
	}
	return slides, true
}

package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
)

// ErrNameTaken is returned when saving a slide under a name that already
// exists in the library
var ErrNameTaken = errors.New("persistence: saved slide name already taken")

// SavedSlides returns the slide library. Any read or parse failure degrades
// to an empty list; this call never fails.
func (r *Repository) SavedSlides() []models.SavedSlide {
	data, found, err := r.store.Get(savedSlidesKey)
	if err != nil {
		log.Printf("Failed to read saved slides: %v", err)
		return []models.SavedSlide{}
	}
	if !found {
		return []models.SavedSlide{}
	}

	var saved []models.SavedSlide
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Failed to parse saved slides, using empty list: %v", err)
		return []models.SavedSlide{}
	}
	if saved == nil {
		return []models.SavedSlide{}
	}
	return saved
}

// SavedSlideByID looks up one library entry
func (r *Repository) SavedSlideByID(id string) (models.SavedSlide, bool) {
	for _, s := range r.SavedSlides() {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return models.SavedSlide{}, false
}

// SaveSlide snapshots slide into the library under the given name. The
// stored copy gets a fresh slide id and fresh element ids, so it is fully
// independent of the live presentation. Names are unique: a collision
// rejects the save and leaves the stored list untouched.
func (r *Repository) SaveSlide(slide models.Slide, name, thumbnail string) (models.SavedSlide, error) {
	if name == "" {
		return models.SavedSlide{}, fmt.Errorf("name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.SavedSlides()
	for _, s := range existing {
		if s.Name == name {
			return models.SavedSlide{}, fmt.Errorf("%w: %q", ErrNameTaken, name)
		}
	}

	saved := models.SavedSlide{
		ID:        uuid.NewString(),
		Name:      name,
		Slide:     slide.CloneWithNewIDs(),
		CreatedAt: time.Now(),
		Thumbnail: thumbnail,
	}

	if err := r.writeSavedSlides(append(existing, saved)); err != nil {
		return models.SavedSlide{}, err
	}
	return saved.Clone(), nil
}

// DeleteSavedSlide removes the entry with the given id and rewrites the
// library. Deleting an id that is not present is not an error.
func (r *Repository) DeleteSavedSlide(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.SavedSlides()
	next := make([]models.SavedSlide, 0, len(existing))
	for _, s := range existing {
		if s.ID != id {
			next = append(next, s)
		}
	}
	return r.writeSavedSlides(next)
}

func (r *Repository) writeSavedSlides(saved []models.SavedSlide) error {
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize saved slides: %w", err)
	}
	if err := r.store.Set(savedSlidesKey, data); err != nil {
		return fmt.Errorf("failed to store saved slides: %w", err)
	}
	return nil
}

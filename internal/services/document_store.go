package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
	"github.com/yadi09/Slide-Editor-Foundation/internal/persistence"
)

// ErrInvalidTemplate is returned when a slide template is missing its id or
// its elements array
var ErrInvalidTemplate = errors.New("services: template must carry an id and an elements array")

// PresentationState is the snapshot handed to callers: the slide sequence
// plus the current selection. Slides in a snapshot are deep copies, so
// holding or modifying one never touches the store.
type PresentationState struct {
	Slides            []models.Slide `json:"slides"`
	CurrentSlideID    string         `json:"currentSlideId"`
	SelectedElementID string         `json:"selectedElementId,omitempty"`
	Loaded            bool           `json:"loaded"`
}

// DocumentStore owns the presentation state. Every change goes through one
// of its operations; each operation runs atomically under the lock, builds a
// new slide sequence rather than editing the old one in place, and saves the
// result. Selection-only changes skip the save since selection is not part
// of the persisted document.
type DocumentStore struct {
	mu   sync.RWMutex
	repo *persistence.Repository

	slides            []models.Slide
	currentSlideID    string
	selectedElementID string
	loaded            bool
}

// NewDocumentStore creates the store and loads the previously persisted
// presentation. A stored, well-formed, non-empty slide sequence replaces the
// default state and its first slide becomes selected; otherwise the session
// starts with a single empty slide. Auto-save stays off until this initial
// load attempt has finished, so a half-initialized session can never
// overwrite stored work.
func NewDocumentStore(repo *persistence.Repository) *DocumentStore {
	s := &DocumentStore{repo: repo}

	if slides, ok := repo.LoadPresentation(); ok && len(slides) > 0 {
		s.slides = slides
		s.currentSlideID = slides[0].ID
		log.Printf("Loaded %d slides from storage", len(slides))
	} else {
		first := models.NewSlide()
		s.slides = []models.Slide{first}
		s.currentSlideID = first.ID
	}

	s.loaded = true
	return s
}

// State returns a deep-copied snapshot of the presentation
func (s *DocumentStore) State() PresentationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Slide returns a deep copy of one slide by id
func (s *DocumentStore) Slide(slideID string) (models.Slide, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, slide := range s.slides {
		if slide.ID == slideID {
			return slide.Clone(), true
		}
	}
	return models.Slide{}, false
}

// AddSlide appends a new slide and selects it, clearing the element
// selection. With a nil template the slide is empty and white; otherwise the
// template is validated and cloned in with fresh ids throughout. An invalid
// template rejects the operation and leaves the state untouched.
func (s *DocumentStore) AddSlide(template *models.Slide) (models.Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var slide models.Slide
	if template != nil {
		if !template.WellFormed() {
			log.Printf("Rejected slide template: missing id or elements")
			return models.Slide{}, ErrInvalidTemplate
		}
		slide = template.CloneWithNewIDs()
	} else {
		slide = models.NewSlide()
	}

	next := make([]models.Slide, 0, len(s.slides)+1)
	next = append(next, s.slides...)
	next = append(next, slide)

	s.slides = next
	s.currentSlideID = slide.ID
	s.selectedElementID = ""
	s.persist()
	return slide.Clone(), nil
}

// DeleteSlide removes the slide with the given id. The presentation never
// becomes empty: deleting the last slide synthesizes a fresh empty one. When
// the deleted slide was selected, selection moves to the first remaining
// slide. The element selection is always cleared.
func (s *DocumentStore) DeleteSlide(slideID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Slide, 0, len(s.slides))
	for _, slide := range s.slides {
		if slide.ID != slideID {
			next = append(next, slide)
		}
	}
	if len(next) == 0 {
		next = append(next, models.NewSlide())
	}

	s.slides = next
	if s.currentSlideID == slideID {
		s.currentSlideID = next[0].ID
	}
	s.selectedElementID = ""
	s.persist()
}

// DuplicateSlide inserts a deep copy of the named slide immediately after
// it. The copy gets a fresh slide id and fresh element ids. Unknown ids are
// a no-op.
func (s *DocumentStore) DuplicateSlide(slideID string) (models.Slide, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, slide := range s.slides {
		if slide.ID == slideID {
			index = i
			break
		}
	}
	if index < 0 {
		return models.Slide{}, false
	}

	duplicate := s.slides[index].CloneWithNewIDs()

	next := make([]models.Slide, 0, len(s.slides)+1)
	next = append(next, s.slides[:index+1]...)
	next = append(next, duplicate)
	next = append(next, s.slides[index+1:]...)

	s.slides = next
	s.persist()
	return duplicate.Clone(), true
}

// ReorderSlides removes the slide at fromIndex and reinserts it at toIndex.
// Out-of-range indices reject the operation instead of corrupting the
// sequence.
func (s *DocumentStore) ReorderSlides(fromIndex, toIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.slides)
	if fromIndex < 0 || fromIndex >= count || toIndex < 0 || toIndex >= count {
		return fmt.Errorf("reorder out of range: from=%d to=%d with %d slides", fromIndex, toIndex, count)
	}

	working := make([]models.Slide, count)
	copy(working, s.slides)
	moved := working[fromIndex]
	working = append(working[:fromIndex], working[fromIndex+1:]...)

	next := make([]models.Slide, 0, count)
	next = append(next, working[:toIndex]...)
	next = append(next, moved)
	next = append(next, working[toIndex:]...)

	s.slides = next
	s.persist()
	return nil
}

// SetCurrentSlide switches the selected slide. Switching slides invalidates
// the element selection. Selection is not persisted.
func (s *DocumentStore) SetCurrentSlide(slideID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentSlideID = slideID
	s.selectedElementID = ""
}

// AddElement appends element to the named slide and selects it. An element
// arriving without an id gets a fresh one. An unknown slide id leaves the
// sequence structurally unchanged.
func (s *DocumentStore) AddElement(slideID string, element models.SlideElement) models.SlideElement {
	s.mu.Lock()
	defer s.mu.Unlock()

	if element.ID == "" {
		element.ID = uuid.NewString()
	}
	stored := element.Clone()

	next := make([]models.Slide, len(s.slides))
	for i, slide := range s.slides {
		if slide.ID == slideID {
			elements := make([]models.SlideElement, 0, len(slide.Elements)+1)
			elements = append(elements, slide.Elements...)
			elements = append(elements, stored)
			slide.Elements = elements
		}
		next[i] = slide
	}

	s.slides = next
	s.selectedElementID = stored.ID
	s.persist()
	return element
}

// UpdateElement merges the partial update onto the matching element.
// Provided fields overwrite, absent fields are preserved. Unknown slide or
// element ids have no effect.
func (s *DocumentStore) UpdateElement(slideID, elementID string, update models.ElementUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Slide, len(s.slides))
	for i, slide := range s.slides {
		if slide.ID == slideID {
			elements := make([]models.SlideElement, len(slide.Elements))
			for j, el := range slide.Elements {
				if el.ID == elementID {
					elements[j] = update.ApplyTo(el)
				} else {
					elements[j] = el
				}
			}
			slide.Elements = elements
		}
		next[i] = slide
	}

	s.slides = next
	s.persist()
}

// DeleteElement removes the matching element from the slide. The element
// selection is always cleared, whichever element was selected.
func (s *DocumentStore) DeleteElement(slideID, elementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Slide, len(s.slides))
	for i, slide := range s.slides {
		if slide.ID == slideID {
			elements := make([]models.SlideElement, 0, len(slide.Elements))
			for _, el := range slide.Elements {
				if el.ID != elementID {
					elements = append(elements, el)
				}
			}
			slide.Elements = elements
		}
		next[i] = slide
	}

	s.slides = next
	s.selectedElementID = ""
	s.persist()
}

// SetSelectedElement changes the selected element; the empty string clears
// the selection. Pure selection change, nothing is persisted.
func (s *DocumentStore) SetSelectedElement(elementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedElementID = elementID
}

// BringToFront stacks the element above every other element on its slide
func (s *DocumentStore) BringToFront(slideID, elementID string) {
	s.restack(slideID, elementID, true)
}

// SendToBack stacks the element below every other element on its slide
func (s *DocumentStore) SendToBack(slideID, elementID string) {
	s.restack(slideID, elementID, false)
}

// restack recomputes the target element's zIndex from the extremes of its
// slide, counting elements without a zIndex as 0. A slide or element that
// does not exist leaves the state unchanged.
func (s *DocumentStore) restack(slideID, elementID string, toFront bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Slide, len(s.slides))
	for i, slide := range s.slides {
		if slide.ID == slideID {
			if _, found := slide.FindElement(elementID); found {
				extreme := slide.Elements[0].ZOrder()
				for _, el := range slide.Elements[1:] {
					z := el.ZOrder()
					if toFront && z > extreme {
						extreme = z
					}
					if !toFront && z < extreme {
						extreme = z
					}
				}

				target := extreme + 1
				if !toFront {
					target = extreme - 1
				}

				elements := make([]models.SlideElement, len(slide.Elements))
				for j, el := range slide.Elements {
					if el.ID == elementID {
						el = el.Clone()
						z := target
						el.ZIndex = &z
					}
					elements[j] = el
				}
				slide.Elements = elements
			}
		}
		next[i] = slide
	}

	s.slides = next
	s.persist()
}

// snapshot must be called with at least a read lock held
func (s *DocumentStore) snapshot() PresentationState {
	slides := make([]models.Slide, len(s.slides))
	for i, slide := range s.slides {
		slides[i] = slide.Clone()
	}
	return PresentationState{
		Slides:            slides,
		CurrentSlideID:    s.currentSlideID,
		SelectedElementID: s.selectedElementID,
		Loaded:            s.loaded,
	}
}

// persist writes the slide sequence through the repository. Must be called
// with the write lock held. Save failures are logged and swallowed: losing
// one auto-save is preferable to failing the edit.
func (s *DocumentStore) persist() {
	if !s.loaded {
		return
	}
	if err := s.repo.SavePresentation(s.slides); err != nil {
		log.Printf("Failed to save presentation: %v", err)
	}
}

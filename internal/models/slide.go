package models

import (
	"sort"

	"github.com/google/uuid"
)

// DefaultBackground is the background color of a freshly created slide
const DefaultBackground = "#ffffff"

// Slide is one ordered page of the presentation. Elements keep their
// insertion order; paint order is derived from zIndex, not from position
// in the slice.
type Slide struct {
	ID              string         `json:"id"`
	Elements        []SlideElement `json:"elements"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
}

// NewSlide returns an empty white slide with a fresh id
func NewSlide() Slide {
	return Slide{
		ID:              uuid.NewString(),
		Elements:        []SlideElement{},
		BackgroundColor: DefaultBackground,
	}
}

// Clone returns a deep copy of the slide. Ids are preserved.
func (s Slide) Clone() Slide {
	out := s
	out.Elements = make([]SlideElement, len(s.Elements))
	for i, el := range s.Elements {
		out.Elements[i] = el.Clone()
	}
	return out
}

// CloneWithNewIDs returns a deep copy of the slide with a fresh slide id and
// fresh ids for every element. Used by duplicate, template insertion, and
// saved-slide insertion so no two slides ever share an element identity.
func (s Slide) CloneWithNewIDs() Slide {
	out := s.Clone()
	out.ID = uuid.NewString()
	for i := range out.Elements {
		out.Elements[i].ID = uuid.NewString()
	}
	return out
}

// WellFormed reports whether the slide carries the minimum shape expected of
// a stored or template slide: a non-empty id and a non-nil elements array
func (s Slide) WellFormed() bool {
	return s.ID != "" && s.Elements != nil
}

// FindElement returns a copy of the element with the given id
func (s Slide) FindElement(elementID string) (SlideElement, bool) {
	for _, el := range s.Elements {
		if el.ID == elementID {
			return el.Clone(), true
		}
	}
	return SlideElement{}, false
}

// PaintOrder returns the slide's elements sorted back to front by zIndex.
// Elements without a zIndex stack at order 0; ties keep insertion order.
func (s Slide) PaintOrder() []SlideElement {
	out := make([]SlideElement, len(s.Elements))
	for i, el := range s.Elements {
		out[i] = el.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZOrder() < out[j].ZOrder()
	})
	return out
}

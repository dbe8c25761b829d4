package models

import "time"

// SavedSlide is a named snapshot of a slide kept in the slide library,
// decoupled from the live presentation. The embedded slide is a full
// independent copy with its own ids, so editing the original afterwards
// never touches the saved copy and vice versa.
type SavedSlide struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slide     Slide     `json:"slide"`
	CreatedAt time.Time `json:"createdAt"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// Clone returns a deep copy of the saved slide. Ids are preserved.
func (s SavedSlide) Clone() SavedSlide {
	out := s
	out.Slide = s.Slide.Clone()
	return out
}

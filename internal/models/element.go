package models

import "github.com/google/uuid"

// ElementType identifies how an element's content is interpreted
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementShape ElementType = "shape"
)

// Valid reports whether t is one of the supported element types
func (t ElementType) Valid() bool {
	switch t {
	case ElementText, ElementImage, ElementShape:
		return true
	}
	return false
}

// Shape kind names carried in the content field of shape elements
const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapeTriangle  = "triangle"
	ShapeDiamond   = "diamond"
	ShapeStar      = "star"
)

// ElementStyle holds optional visual attributes of an element.
// Zero values are omitted when serialized so stored slides only
// carry the attributes that were actually set.
type ElementStyle struct {
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	Color           string  `json:"color,omitempty"`
	FontSize        float64 `json:"fontSize,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	FontStyle       string  `json:"fontStyle,omitempty"`
	TextDecoration  string  `json:"textDecoration,omitempty"`
	TextAlign       string  `json:"textAlign,omitempty"`
	BorderRadius    string  `json:"borderRadius,omitempty"`
}

// SlideElement is a positioned object on a slide. Content depends on Type:
// literal text for text elements, an image URL or data URI for image
// elements, and a shape kind name for shape elements. Content may also hold
// a placeholder token such as {{address}} or {{images[0]}} before population.
type SlideElement struct {
	ID      string        `json:"id"`
	Type    ElementType   `json:"type"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Content string        `json:"content,omitempty"`
	Style   *ElementStyle `json:"style,omitempty"`
	ZIndex  *int          `json:"zIndex,omitempty"`
}

// ZOrder returns the element's stacking order, 0 when no zIndex is set
func (e SlideElement) ZOrder() int {
	if e.ZIndex == nil {
		return 0
	}
	return *e.ZIndex
}

// Clone returns a deep copy of the element
func (e SlideElement) Clone() SlideElement {
	out := e
	if e.Style != nil {
		style := *e.Style
		out.Style = &style
	}
	if e.ZIndex != nil {
		z := *e.ZIndex
		out.ZIndex = &z
	}
	return out
}

// CloneWithNewID returns a deep copy of the element carrying a fresh id
func (e SlideElement) CloneWithNewID() SlideElement {
	out := e.Clone()
	out.ID = uuid.NewString()
	return out
}

// ElementUpdate describes a partial update to an element. Pointer fields
// distinguish "not provided" (nil) from "set to the zero value"; provided
// fields overwrite, absent fields are preserved. The element id is never
// updated.
type ElementUpdate struct {
	Type    *ElementType  `json:"type,omitempty"`
	X       *float64      `json:"x,omitempty"`
	Y       *float64      `json:"y,omitempty"`
	Width   *float64      `json:"width,omitempty"`
	Height  *float64      `json:"height,omitempty"`
	Content *string       `json:"content,omitempty"`
	Style   *ElementStyle `json:"style,omitempty"`
	ZIndex  *int          `json:"zIndex,omitempty"`
}

// ApplyTo merges the update onto a copy of el and returns it. The merge is
// shallow: a provided Style replaces the whole style, it is not merged
// attribute by attribute.
func (u ElementUpdate) ApplyTo(el SlideElement) SlideElement {
	out := el.Clone()
	if u.Type != nil {
		out.Type = *u.Type
	}
	if u.X != nil {
		out.X = *u.X
	}
	if u.Y != nil {
		out.Y = *u.Y
	}
	if u.Width != nil {
		out.Width = *u.Width
	}
	if u.Height != nil {
		out.Height = *u.Height
	}
	if u.Content != nil {
		out.Content = *u.Content
	}
	if u.Style != nil {
		style := *u.Style
		out.Style = &style
	}
	if u.ZIndex != nil {
		z := *u.ZIndex
		out.ZIndex = &z
	}
	return out
}

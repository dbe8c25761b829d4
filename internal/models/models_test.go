package models

import (
	"encoding/json"
	"testing"
)

func zp(v int) *int { return &v }

func TestPaintOrderSortsByZIndex(t *testing.T) {
	slide := Slide{
		ID: "s1",
		Elements: []SlideElement{
			{ID: "top", Type: ElementText, ZIndex: zp(5)},
			{ID: "bottom", Type: ElementText, ZIndex: zp(-2)},
			{ID: "mid", Type: ElementText, ZIndex: zp(1)},
		},
	}

	order := slide.PaintOrder()
	want := []string{"bottom", "mid", "top"}
	for i, el := range order {
		if el.ID != want[i] {
			t.Fatalf("paint order = %v, want %v", ids(order), want)
		}
	}
}

func TestPaintOrderTreatsMissingZIndexAsZero(t *testing.T) {
	slide := Slide{
		ID: "s1",
		Elements: []SlideElement{
			{ID: "positive", Type: ElementText, ZIndex: zp(1)},
			{ID: "unset", Type: ElementText},
			{ID: "negative", Type: ElementText, ZIndex: zp(-1)},
		},
	}

	order := slide.PaintOrder()
	want := []string{"negative", "unset", "positive"}
	for i, el := range order {
		if el.ID != want[i] {
			t.Fatalf("paint order = %v, want %v", ids(order), want)
		}
	}
}

func TestPaintOrderIsStableForTies(t *testing.T) {
	slide := Slide{
		ID: "s1",
		Elements: []SlideElement{
			{ID: "first", Type: ElementText},
			{ID: "second", Type: ElementText, ZIndex: zp(0)},
			{ID: "third", Type: ElementText},
		},
	}

	order := slide.PaintOrder()
	want := []string{"first", "second", "third"}
	for i, el := range order {
		if el.ID != want[i] {
			t.Fatalf("tied elements must keep insertion order: got %v, want %v", ids(order), want)
		}
	}
}

func TestPaintOrderDoesNotReorderTheSlide(t *testing.T) {
	slide := Slide{
		ID: "s1",
		Elements: []SlideElement{
			{ID: "a", Type: ElementText, ZIndex: zp(9)},
			{ID: "b", Type: ElementText, ZIndex: zp(1)},
		},
	}

	slide.PaintOrder()
	if slide.Elements[0].ID != "a" || slide.Elements[1].ID != "b" {
		t.Error("PaintOrder must sort a copy, not the slide itself")
	}
}

func ids(elements []SlideElement) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.ID
	}
	return out
}

func TestSlideCloneIsDeep(t *testing.T) {
	z := 3
	original := Slide{
		ID:              "s1",
		BackgroundColor: "#abcdef",
		Elements: []SlideElement{
			{ID: "e1", Type: ElementText, Content: "hello", Style: &ElementStyle{Color: "#111111"}, ZIndex: &z},
		},
	}

	clone := original.Clone()
	clone.Elements[0].Content = "changed"
	clone.Elements[0].Style.Color = "#ff0000"
	*clone.Elements[0].ZIndex = 99

	if original.Elements[0].Content != "hello" {
		t.Error("clone shares element storage with the original")
	}
	if original.Elements[0].Style.Color != "#111111" {
		t.Error("clone shares style storage with the original")
	}
	if *original.Elements[0].ZIndex != 3 {
		t.Error("clone shares zIndex storage with the original")
	}
}

func TestSlideCloneNormalizesNilElements(t *testing.T) {
	clone := Slide{ID: "s1"}.Clone()
	if clone.Elements == nil {
		t.Error("clone should always carry a non-nil elements slice")
	}
}

func TestCloneWithNewIDsReissuesEveryID(t *testing.T) {
	original := Slide{
		ID: "s1",
		Elements: []SlideElement{
			{ID: "e1", Type: ElementText, Content: "keep me"},
			{ID: "e2", Type: ElementImage, Content: "photo.jpg"},
		},
	}

	clone := original.CloneWithNewIDs()
	if clone.ID == original.ID || clone.ID == "" {
		t.Errorf("slide id = %q, want a fresh one", clone.ID)
	}
	for i, el := range clone.Elements {
		if el.ID == original.Elements[i].ID || el.ID == "" {
			t.Errorf("element %d id = %q, want a fresh one", i, el.ID)
		}
		if el.Content != original.Elements[i].Content {
			t.Errorf("element %d content = %q, want %q", i, el.Content, original.Elements[i].Content)
		}
	}
}

func TestApplyToMergesOnlyProvidedFields(t *testing.T) {
	el := SlideElement{
		ID: "e1", Type: ElementText,
		X: 1, Y: 2, Width: 3, Height: 4,
		Content: "old",
		Style:   &ElementStyle{Color: "#111111", FontSize: 12},
	}

	x := 10.0
	content := "new"
	got := ElementUpdate{X: &x, Content: &content}.ApplyTo(el)

	if got.X != 10 || got.Content != "new" {
		t.Errorf("provided fields not applied: %+v", got)
	}
	if got.Y != 2 || got.Width != 3 || got.Height != 4 {
		t.Error("absent fields must be preserved")
	}
	if got.Style == nil || got.Style.FontSize != 12 {
		t.Error("absent style must be preserved")
	}
	if got.ID != "e1" {
		t.Error("id must never change")
	}
}

func TestApplyToReplacesStyleWholesale(t *testing.T) {
	el := SlideElement{
		ID: "e1", Type: ElementText,
		Style: &ElementStyle{Color: "#111111", FontSize: 12, FontWeight: "bold"},
	}

	got := ElementUpdate{Style: &ElementStyle{Color: "#222222"}}.ApplyTo(el)
	if got.Style.Color != "#222222" {
		t.Errorf("color = %q, want #222222", got.Style.Color)
	}
	if got.Style.FontSize != 0 || got.Style.FontWeight != "" {
		t.Error("style updates replace the whole style, old attributes must not survive")
	}
}

func TestApplyToDoesNotAliasUpdateStorage(t *testing.T) {
	style := &ElementStyle{Color: "#333333"}
	z := 7
	update := ElementUpdate{Style: style, ZIndex: &z}

	got := update.ApplyTo(SlideElement{ID: "e1", Type: ElementText})
	style.Color = "#999999"
	z = 99

	if got.Style.Color != "#333333" {
		t.Error("applied style aliases the update's pointer")
	}
	if *got.ZIndex != 7 {
		t.Error("applied zIndex aliases the update's pointer")
	}
}

func TestWellFormed(t *testing.T) {
	cases := []struct {
		name  string
		slide Slide
		want  bool
	}{
		{"complete", Slide{ID: "s1", Elements: []SlideElement{}}, true},
		{"with elements", Slide{ID: "s1", Elements: []SlideElement{{ID: "e1", Type: ElementText}}}, true},
		{"missing id", Slide{Elements: []SlideElement{}}, false},
		{"nil elements", Slide{ID: "s1"}, false},
	}
	for _, tc := range cases {
		if got := tc.slide.WellFormed(); got != tc.want {
			t.Errorf("%s: WellFormed() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestElementTypeValid(t *testing.T) {
	for _, valid := range []ElementType{ElementText, ElementImage, ElementShape} {
		if !valid.Valid() {
			t.Errorf("%q should be valid", valid)
		}
	}
	for _, invalid := range []ElementType{"", "video", "TEXT"} {
		if invalid.Valid() {
			t.Errorf("%q should be invalid", invalid)
		}
	}
}

func TestElementJSONShape(t *testing.T) {
	z := 2
	el := SlideElement{
		ID: "e1", Type: ElementImage,
		X: 10, Y: 20, Width: 300, Height: 200,
		Content: "photo.jpg",
		ZIndex:  &z,
	}

	data, err := json.Marshal(el)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"id", "type", "x", "y", "width", "height", "content", "zIndex"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("serialized element missing %q", key)
		}
	}
	if _, ok := raw["style"]; ok {
		t.Error("unset style must be omitted")
	}

	bare := SlideElement{ID: "e2", Type: ElementText}
	data, _ = json.Marshal(bare)
	raw = nil
	json.Unmarshal(data, &raw)
	if _, ok := raw["zIndex"]; ok {
		t.Error("unset zIndex must be omitted")
	}
}

package models

// SlideTemplate is one entry of the built-in template catalog. Template
// elements carry placeholder tokens that population later replaces with
// listing data; inserting a template always reissues every id.
type SlideTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slide       Slide  `json:"slide"`
}

// Clone returns a deep copy of the template
func (t SlideTemplate) Clone() SlideTemplate {
	out := t
	out.Slide = t.Slide.Clone()
	return out
}

// The catalog is laid out for a 960x540 canvas.
var builtinTemplates = []SlideTemplate{
	{
		ID:          "property-cover",
		Name:        "Property Cover",
		Description: "Full-width hero photo with address and price",
		Slide: Slide{
			ID:              "property-cover",
			BackgroundColor: "#1a1a2e",
			Elements: []SlideElement{
				{
					ID: "cover-photo", Type: ElementImage,
					X: 0, Y: 0, Width: 960, Height: 360,
					Content: "{{images[0]}}",
				},
				{
					ID: "cover-address", Type: ElementText,
					X: 60, Y: 390, Width: 620, Height: 70,
					Content: "{{address}}",
					Style:   &ElementStyle{Color: "#ffffff", FontSize: 36, FontWeight: "bold"},
				},
				{
					ID: "cover-price", Type: ElementText,
					X: 60, Y: 460, Width: 400, Height: 50,
					Content: "{{price}}",
					Style:   &ElementStyle{Color: "#e6b655", FontSize: 28, FontWeight: "bold"},
				},
			},
		},
	},
	{
		ID:          "property-details",
		Name:        "Property Details",
		Description: "Key facts and description",
		Slide: Slide{
			ID:              "property-details",
			BackgroundColor: "#ffffff",
			Elements: []SlideElement{
				{
					ID: "details-heading", Type: ElementText,
					X: 60, Y: 40, Width: 840, Height: 50,
					Content: "{{address}}",
					Style:   &ElementStyle{Color: "#1a1a2e", FontSize: 30, FontWeight: "bold"},
				},
				{
					ID: "details-facts", Type: ElementText,
					X: 60, Y: 120, Width: 400, Height: 180,
					Content: "{{bedrooms}} bed · {{bathrooms}} bath\n{{sqft}} sqft\nBuilt {{yearBuilt}}\n{{propertyType}}",
					Style:   &ElementStyle{Color: "#333333", FontSize: 20},
				},
				{
					ID: "details-description", Type: ElementText,
					X: 500, Y: 120, Width: 400, Height: 320,
					Content: "{{description}}",
					Style:   &ElementStyle{Color: "#555555", FontSize: 16},
				},
				{
					ID: "details-rule", Type: ElementShape,
					X: 60, Y: 100, Width: 840, Height: 4,
					Content: ShapeRectangle,
					Style:   &ElementStyle{BackgroundColor: "#e6b655"},
				},
			},
		},
	},
	{
		ID:          "property-gallery",
		Name:        "Photo Gallery",
		Description: "Four photo grid",
		Slide: Slide{
			ID:              "property-gallery",
			BackgroundColor: "#f5f5f5",
			Elements: []SlideElement{
				{
					ID: "gallery-photo-1", Type: ElementImage,
					X: 40, Y: 40, Width: 430, Height: 220,
					Content: "{{images[1]}}",
				},
				{
					ID: "gallery-photo-2", Type: ElementImage,
					X: 490, Y: 40, Width: 430, Height: 220,
					Content: "{{images[2]}}",
				},
				{
					ID: "gallery-photo-3", Type: ElementImage,
					X: 40, Y: 280, Width: 430, Height: 220,
					Content: "{{images[3]}}",
				},
				{
					ID: "gallery-photo-4", Type: ElementImage,
					X: 490, Y: 280, Width: 430, Height: 220,
					Content: "{{images[4]}}",
				},
			},
		},
	},
	{
		ID:          "agent-contact",
		Name:        "Agent Contact",
		Description: "Closing slide with agent details",
		Slide: Slide{
			ID:              "agent-contact",
			BackgroundColor: "#1a1a2e",
			Elements: []SlideElement{
				{
					ID: "contact-accent", Type: ElementShape,
					X: 430, Y: 80, Width: 100, Height: 100,
					Content: ShapeCircle,
					Style:   &ElementStyle{BackgroundColor: "#e6b655", BorderRadius: "50%"},
				},
				{
					ID: "contact-name", Type: ElementText,
					X: 180, Y: 220, Width: 600, Height: 60,
					Content: "{{agent.name}}",
					Style:   &ElementStyle{Color: "#ffffff", FontSize: 32, FontWeight: "bold", TextAlign: "center"},
				},
				{
					ID: "contact-phone", Type: ElementText,
					X: 180, Y: 300, Width: 600, Height: 40,
					Content: "{{agent.phone}}",
					Style:   &ElementStyle{Color: "#cccccc", FontSize: 22, TextAlign: "center"},
				},
				{
					ID: "contact-email", Type: ElementText,
					X: 180, Y: 350, Width: 600, Height: 40,
					Content: "{{agent.email}}",
					Style:   &ElementStyle{Color: "#cccccc", FontSize: 22, TextAlign: "center"},
				},
			},
		},
	},
}

// Templates returns the built-in slide template catalog. The returned
// entries are copies, callers may modify them freely.
func Templates() []SlideTemplate {
	out := make([]SlideTemplate, len(builtinTemplates))
	for i, t := range builtinTemplates {
		out[i] = t.Clone()
	}
	return out
}

// TemplateByID looks up a catalog template by id
func TemplateByID(id string) (SlideTemplate, bool) {
	for _, t := range builtinTemplates {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return SlideTemplate{}, false
}

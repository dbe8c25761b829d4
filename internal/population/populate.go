// Package population fills placeholder tokens in slide elements with
// listing data. It is a pure transform: callers receive a new slide and
// decide themselves how to merge the result back into the document.
package population

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
)

// imagePattern matches content that is exactly one image placeholder,
// e.g. {{images[2]}}
var imagePattern = regexp.MustCompile(`^\{\{images\[(\d+)\]\}\}$`)

// english renders grouped numbers like 3200 -> "3,200"
var english = message.NewPrinter(language.English)

// Populate returns a copy of slide with every placeholder token replaced by
// the corresponding listing value. Image elements whose content is an
// {{images[N]}} token take the N-th listing image; an index past the end of
// the image list leaves the token in place. All other content gets literal,
// case-sensitive substitution of the known tokens, and unknown tokens stay
// verbatim. The input slide is never modified.
func Populate(slide models.Slide, listing models.Listing) models.Slide {
	out := slide.Clone()
	for i, el := range out.Elements {
		out.Elements[i] = populateElement(el, listing)
	}
	return out
}

func populateElement(el models.SlideElement, listing models.Listing) models.SlideElement {
	if el.Content == "" {
		return el
	}

	if el.Type == models.ElementImage {
		if m := imagePattern.FindStringSubmatch(el.Content); m != nil {
			if idx, err := strconv.Atoi(m[1]); err == nil && idx < len(listing.Images) {
				el.Content = listing.Images[idx]
			}
			return el
		}
	}

	el.Content = replaceTokens(el.Content, listing)
	return el
}

func replaceTokens(content string, listing models.Listing) string {
	replacements := []struct {
		token string
		value string
	}{
		{"{{address}}", listing.Address},
		{"{{price}}", listing.Price},
		{"{{bedrooms}}", strconv.Itoa(listing.Bedrooms)},
		{"{{bathrooms}}", strconv.Itoa(listing.Bathrooms)},
		{"{{sqft}}", english.Sprintf("%d", listing.Sqft)},
		{"{{yearBuilt}}", strconv.Itoa(listing.YearBuilt)},
		{"{{propertyType}}", listing.PropertyType},
		{"{{description}}", listing.Description},
		{"{{agent.name}}", listing.Agent.Name},
		{"{{agent.phone}}", listing.Agent.Phone},
		{"{{agent.email}}", listing.Agent.Email},
	}
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r.token, r.value)
	}
	return content
}

package models

// Agent holds the contact details of the listing agent
type Agent struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Listing is the real-estate data record consumed by template population.
// It is supplied wholesale by the caller and never mutated here. Price
// arrives preformatted; Sqft is formatted with thousands separators during
// population, the other numeric fields render as plain integers.
type Listing struct {
	Address      string   `json:"address"`
	Price        string   `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Sqft         int      `json:"sqft"`
	YearBuilt    int      `json:"yearBuilt"`
	PropertyType string   `json:"propertyType"`
	Description  string   `json:"description"`
	Agent        Agent    `json:"agent"`
	Images       []string `json:"images"`
}

package catalog

import "finishout/internal/domain"

// ResolvedOption is one selectable entry of an apartment's effective
// catalog. Ref carries the catalog/custom discriminator; IsDefault is never
// set on custom options.
type ResolvedOption struct {
	Ref         domain.OptionRef `json:"ref"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	InfoText    string           `json:"info_text,omitempty"`
	Price       float64          `json:"price"`
	IsDefault   bool             `json:"is_default"`
	ImageURLs   []string         `json:"image_urls,omitempty"`
}

// ResolvedCategory pairs a category with its effective options for one
// apartment. Zero options is a valid state, not an error.
type ResolvedCategory struct {
	Category domain.Category  `json:"category"`
	Options  []ResolvedOption `json:"options"`
}

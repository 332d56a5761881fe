package document

import "time"

// Row is one line of the summary protocol: one category and the option
// chosen for it. ImageURLs are opaque pass-through, primary image first.
type Row struct {
	CategoryName string   `json:"category_name"`
	OptionName   string   `json:"option_name"`
	Description  string   `json:"description,omitempty"`
	InfoText     string   `json:"info_text,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
	Price        float64  `json:"price"`
	PriceLabel   string   `json:"price_label"`
	Custom       bool     `json:"custom"`
}

// Summary is the format-agnostic protocol document: the same structure
// feeds the CSV export, the HTML proof and any PDF rendering. Rows follow
// category display order; categories without a recorded selection are
// omitted.
type Summary struct {
	ProjectName    string     `json:"project_name"`
	ProjectAddress string     `json:"project_address"`
	ApartmentName  string     `json:"apartment_name"`
	CustomerName   string     `json:"customer_name,omitempty"`
	AccessCode     string     `json:"access_code"`
	Status         string     `json:"status"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Rows           []Row      `json:"rows"`
	Total          float64    `json:"total"`
	TotalLabel     string     `json:"total_label"`
}

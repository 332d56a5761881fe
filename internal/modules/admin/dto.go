package admin

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProjectRequest struct {
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	IntroText string `json:"intro_text"`
	Status    string `json:"status" validate:"omitempty,oneof=draft active archived"`
}

type ApartmentRequest struct {
	Name         string `json:"name" validate:"required"`
	CustomerName string `json:"customer_name"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	SortRank    int    `json:"sort_rank"`
}

type OptionRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	InfoText    string  `json:"info_text"`
	Price       float64 `json:"price"`
	IsDefault   bool    `json:"is_default"`
	SortRank    int     `json:"sort_rank"`
}

type OptionImageRequest struct {
	URL      string `json:"url" validate:"required,url"`
	SortRank int    `json:"sort_rank"`
}

type CustomOptionRequest struct {
	CategoryID  int64   `json:"category_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	InfoText    string  `json:"info_text"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

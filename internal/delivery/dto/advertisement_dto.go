package dto

// Request DTOs

type CreateAdvertisementRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=255"`
	Image     string `json:"image" validate:"required,max=500"`
	Link      string `json:"link" validate:"omitempty,url"`
	Position  string `json:"position" validate:"required,oneof=home_top home_bottom search_top sidebar doctor_detail"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"omitempty"`
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateAdvertisementRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=2,max=255"`
	Image     *string `json:"image" validate:"omitempty,max=500"`
	Link      *string `json:"link" validate:"omitempty,url"`
	Position  *string `json:"position" validate:"omitempty,oneof=home_top home_bottom search_top sidebar doctor_detail"`
	StartDate *string `json:"start_date" validate:"omitempty"`
	EndDate   *string `json:"end_date" validate:"omitempty"`
	IsActive  *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type AdvertisementResponse struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	ImageURL   *string `json:"image_url"`
	Link       string  `json:"link,omitempty"`
	Position   string  `json:"position"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
	IsActive   *bool   `json:"is_active"`
	IsLive     bool    `json:"is_live"`
	ClickCount int64   `json:"click_count"`
}

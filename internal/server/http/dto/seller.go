package dto

// SellerApplication describes a seller onboarding payload.
type SellerApplication struct {
	ShopName    string `json:"shop_name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Country     string `json:"country"`
	City        string `json:"city"`
	IBAN        string `json:"iban"`
}

// SellerStatusRequest carries a requested seller status value.
type SellerStatusRequest struct {
	Status string `json:"status"`
}

// SellerResponse describes a seller account.
type SellerResponse struct {
	ID            int64   `json:"id"`
	ShopName      string  `json:"shop_name"`
	Slug          string  `json:"slug"`
	Status        string  `json:"status"`
	RatingAverage *string `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`
}

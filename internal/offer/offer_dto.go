package offer

type CreateOfferRequest struct {
	Candidate string `json:"candidate" binding:"required"`
	OfferDate string `json:"offer_date" binding:"required"`
	OfferedBy string `json:"offered_by" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type GetOffersFilterRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type OfferResponse struct {
	ID        int64  `json:"id"`
	Candidate string `json:"candidate"`
	OfferDate string `json:"offer_date"`
	OfferedBy string `json:"offered_by"`
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

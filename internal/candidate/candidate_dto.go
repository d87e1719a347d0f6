package candidate

type CreateCandidateRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Project     string `json:"project" binding:"required"`
	Location    string `json:"location" binding:"required"`
}

type CandidateResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Project     string `json:"project"`
	Location    string `json:"location"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

package asset

type CreateAssetRequest struct {
	Employee string `json:"employee" binding:"required"`
	Asset    string `json:"asset" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

type GetAssetsFilterRequest struct {
	Employee string `form:"employee"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type AssetResponse struct {
	ID        int64  `json:"id"`
	Employee  string `json:"employee"`
	Asset     string `json:"asset"`
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

package document

import "io"

// UploadInput is the decoded multipart form. Content is read once by the store.
type UploadInput struct {
	Employee    string
	FileName    string
	ContentType string
	Content     io.Reader
}

type GetDocumentsFilterRequest struct {
	Employee string `form:"employee"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type DocumentResponse struct {
	ID          int64  `json:"id"`
	Employee    string `json:"employee"`
	FileName    string `json:"file_name"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
	UploadedBy  string `json:"uploaded_by"`
	CreatedAt   string `json:"created_at"`
}

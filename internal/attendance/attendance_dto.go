package attendance

type RecordAttendanceRequest struct {
	Employee  string `json:"employee" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Present   *bool  `json:"present" binding:"required"`
	LeaveType string `json:"leave_type"`
}

type GetAttendanceFilterRequest struct {
	Employee string `form:"employee"`
	From     string `form:"from"`
	To       string `form:"to"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type AttendanceResponse struct {
	ID        int64  `json:"id"`
	Employee  string `json:"employee"`
	Date      string `json:"date"`
	Present   bool   `json:"present"`
	LeaveType string `json:"leave_type"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

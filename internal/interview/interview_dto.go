package interview

type CreateInterviewRequest struct {
	CandidateID      int64  `json:"candidate_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Interviewer      string `json:"interviewer" binding:"required"`
	Strengths        string `json:"strengths"`
	Weaknesses       string `json:"weaknesses"`
	Qualification    int    `json:"qualification" binding:"required"`
	Experience       int    `json:"experience" binding:"required"`
	CommWritten      int    `json:"comm_written" binding:"required"`
	CommOral         int    `json:"comm_oral" binding:"required"`
	ProblemSolving   int    `json:"problem_solving" binding:"required"`
	TeamCapabilities int    `json:"team_capabilities" binding:"required"`
	Comparison       string `json:"comparison" binding:"required"`
	FinalRemarks     string `json:"final_remarks"`
	Decision         string `json:"decision" binding:"required"`
}

type GetInterviewsFilterRequest struct {
	CandidateID int64 `form:"candidate_id"`
	Page        int   `form:"page"`
	PageSize    int   `form:"page_size"`
}

type InterviewResponse struct {
	ID                int64   `json:"id"`
	CandidateID       int64   `json:"candidate_id"`
	CandidateName     string  `json:"candidate_name,omitempty"`
	Date              string  `json:"date"`
	Interviewer       string  `json:"interviewer"`
	Strengths         string  `json:"strengths"`
	Weaknesses        string  `json:"weaknesses"`
	Qualification     int     `json:"qualification"`
	Experience        int     `json:"experience"`
	CommWritten       int     `json:"comm_written"`
	CommOral          int     `json:"comm_oral"`
	ProblemSolving    int     `json:"problem_solving"`
	TeamCapabilities  int     `json:"team_capabilities"`
	Comparison        string  `json:"comparison"`
	FinalRemarks      string  `json:"final_remarks"`
	Decision          string  `json:"decision"`
	CreatedBy         string  `json:"created_by"`
	ReportPath        *string `json:"report_path,omitempty"`
	ReportGeneratedAt *string `json:"report_generated_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

type Report struct {
	FileName string
	Content  []byte
}

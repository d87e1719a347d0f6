package interview

import "time"

// Comparison against other candidates for the same role.
const (
	ComparisonBelowPar = "Below Par"
	ComparisonAtPar    = "At Par"
	ComparisonAbovePar = "Above Par"
)

const (
	DecisionRecommended = "Recommended for Hire"
	DecisionReject      = "Reject"
	DecisionOnHold      = "On Hold"
)

var (
	Comparisons = []string{ComparisonBelowPar, ComparisonAtPar, ComparisonAbovePar}
	Decisions   = []string{DecisionRecommended, DecisionReject, DecisionOnHold}
)

type Interview struct {
	ID               int64         `gorm:"primaryKey;autoIncrement"`
	CandidateID      int64         `gorm:"not null;index"`
	Candidate        *CandidateRef `gorm:"foreignKey:CandidateID;references:ID"`
	Date             time.Time     `gorm:"type:date;not null"`
	Interviewer      string        `gorm:"type:varchar(255);not null"`
	Strengths        string        `gorm:"type:text"`
	Weaknesses       string        `gorm:"type:text"`
	Qualification    int           `gorm:"not null"`
	Experience       int           `gorm:"not null"`
	CommWritten      int           `gorm:"column:comm_written;not null"`
	CommOral         int           `gorm:"column:comm_oral;not null"`
	ProblemSolving   int           `gorm:"not null"`
	TeamCapabilities int           `gorm:"not null"`
	Comparison       string        `gorm:"type:varchar(20);not null"`
	FinalRemarks     string        `gorm:"type:text"`
	Decision         string        `gorm:"type:varchar(30);not null"`
	CreatedBy        string        `gorm:"type:varchar(255)"`

	ReportPath        *string
	ReportGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CandidateRef struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (CandidateRef) TableName() string {
	return "candidates"
}

func (i Interview) CandidateName() string {
	if i.Candidate == nil {
		return ""
	}
	return i.Candidate.Name
}

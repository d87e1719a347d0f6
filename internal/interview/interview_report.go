package interview

import (
	"go-hrdesk/internal/report"
	"go-hrdesk/internal/shared/formfield"
	"go-hrdesk/internal/shared/storage"
)

// ReportFields lists the scorecard in the order it is printed.
func ReportFields(i Interview) []report.Field {
	return []report.Field{
		{Label: "Date", Value: i.Date.Format(formfield.DateLayout)},
		{Label: "Interviewer", Value: i.Interviewer},
		{Label: "Strengths", Value: i.Strengths},
		{Label: "Weaknesses", Value: i.Weaknesses},
		{Label: "Qualification", Value: i.Qualification},
		{Label: "Experience", Value: i.Experience},
		{Label: "Comm. Written", Value: i.CommWritten},
		{Label: "Comm. Oral", Value: i.CommOral},
		{Label: "Problem Solving", Value: i.ProblemSolving},
		{Label: "Team Capabilities", Value: i.TeamCapabilities},
		{Label: "Comparison", Value: i.Comparison},
		{Label: "Remarks", Value: i.FinalRemarks},
		{Label: "Decision", Value: i.Decision},
	}
}

func ReportLines(i Interview) []string {
	return report.FormatReport(i.CandidateName(), ReportFields(i))
}

// ReportFileName is <candidate>_interview.pdf.
func ReportFileName(i Interview) string {
	name := i.CandidateName()
	if name == "" {
		name = "candidate"
	}
	return storage.SafeFileName(name) + "_interview.pdf"
}

func renderReport(i Interview) (Report, error) {
	content, err := report.RenderPDF(ReportLines(i))
	if err != nil {
		return Report{}, err
	}
	return Report{FileName: ReportFileName(i), Content: content}, nil
}

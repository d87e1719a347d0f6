package events

import "time"

const InterviewRecordedTopic = "hr.interview.recorded.v1"

const InterviewRecordedType = "interview_recorded"

type InterviewRecordedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	InterviewID int64     `json:"interview_id"`
	CandidateID int64     `json:"candidate_id"`
	Decision    string    `json:"decision"`
	RecordedBy  string    `json:"recorded_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

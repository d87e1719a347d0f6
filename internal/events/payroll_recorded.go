package events

import "time"

const PayrollRecordedTopic = "hr.payroll.recorded.v1"

const PayrollRecordedType = "payroll_recorded"

type PayrollRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  int64     `json:"payroll_id"`
	Employee   string    `json:"employee"`
	Month      string    `json:"month"`
	RecordedBy string    `json:"recorded_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

package models

type StatusChangeEvent struct {
	EventID      string `json:"eventId"`
	ResponseID   string `json:"responseId"`
	AssessmentID string `json:"assessmentId"`
	AccountID    string `json:"accountId"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	OccurredAt   string `json:"occurredAt"`
}

func NewStatusChangeEvent(response *AssessmentResponse, event TimelineEvent) StatusChangeEvent {
	return StatusChangeEvent{
		EventID:      event.ID,
		ResponseID:   response.ID,
		AssessmentID: response.AssessmentID,
		AccountID:    response.AccountID,
		Status:       event.Status,
		Message:      event.Message,
		OccurredAt:   event.Date,
	}
}

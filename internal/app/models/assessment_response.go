package models

import (
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/utils"
)

type AssessmentResponse struct {
	ID           string             `json:"id"`
	AssessmentID string             `json:"assessmentId"`
	AccountID    string             `json:"accountId"`
	Status       string             `json:"status"`
	Responses    []QuestionResponse `json:"responses"`
	Timeline     []TimelineEvent    `json:"timeline"`
	SubmittedAt  string             `json:"submittedAt,omitempty"`
	TimeModel
	Extra Extras `json:"-"`
}

type QuestionResponse struct {
	SectionID  string      `json:"sectionId"`
	QuestionID string      `json:"questionId"`
	Value      interface{} `json:"value"`
	UpdatedAt  string      `json:"updatedAt"`
	Extra      Extras      `json:"-"`
}

type TimelineEvent struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
	Extra   Extras `json:"-"`
}

type (
	assessmentResponseFields AssessmentResponse
	questionResponseFields   QuestionResponse
	timelineEventFields      TimelineEvent
)

func (r AssessmentResponse) GetID() string       { return r.ID }
func (r AssessmentResponse) ReferenceID() string { return r.AssessmentID }

func (r AssessmentResponse) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(assessmentResponseFields(r), r.Extra)
}

func (r *AssessmentResponse) UnmarshalJSON(data []byte) error {
	var fields assessmentResponseFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*r = AssessmentResponse(fields)
	r.Extra = extras
	return nil
}

func (q QuestionResponse) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(questionResponseFields(q), q.Extra)
}

func (q *QuestionResponse) UnmarshalJSON(data []byte) error {
	var fields questionResponseFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*q = QuestionResponse(fields)
	q.Extra = extras
	return nil
}

func (e TimelineEvent) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(timelineEventFields(e), e.Extra)
}

func (e *TimelineEvent) UnmarshalJSON(data []byte) error {
	var fields timelineEventFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*e = TimelineEvent(fields)
	e.Extra = extras
	return nil
}

// AppendTimeline records a status change. Entries are never edited afterwards.
func (r *AssessmentResponse) AppendTimeline(status, message string) TimelineEvent {
	event := TimelineEvent{
		ID:      utils.GenerateID(),
		Date:    utils.Now(),
		Status:  status,
		Message: message,
	}
	r.Timeline = append(r.Timeline, event)
	return event
}

// UpsertAnswer replaces the answer for (sectionID, questionID) in place, or
// appends it when the pair has not been answered yet.
func (r *AssessmentResponse) UpsertAnswer(sectionID, questionID string, value interface{}) {
	now := utils.Now()
	for i := range r.Responses {
		if r.Responses[i].SectionID == sectionID && r.Responses[i].QuestionID == questionID {
			r.Responses[i].Value = value
			r.Responses[i].UpdatedAt = now
			return
		}
	}
	r.Responses = append(r.Responses, QuestionResponse{
		SectionID:  sectionID,
		QuestionID: questionID,
		Value:      value,
		UpdatedAt:  now,
	})
}

func (r *AssessmentResponse) Answer(sectionID, questionID string) (interface{}, bool) {
	for _, answer := range r.Responses {
		if answer.SectionID == sectionID && answer.QuestionID == questionID {
			return answer.Value, true
		}
	}
	return nil, false
}

func (r *AssessmentResponse) IsSubmitted() bool {
	return r.Status == constvars.ResponseStatusSubmitted
}

// EnsureLists replaces nil answer and timeline lists with empty ones so they
// serialize as [].
func (r *AssessmentResponse) EnsureLists() {
	if r.Responses == nil {
		r.Responses = []QuestionResponse{}
	}
	if r.Timeline == nil {
		r.Timeline = []TimelineEvent{}
	}
}

package constvars

const (
	ResponseStatusNotStarted = "Not Started"
	ResponseStatusInProgress = "In Progress"
	ResponseStatusSubmitted  = "Submitted"
)

const (
	AssessmentStatusDraft      = "Draft"
	AssessmentStatusSent       = "Sent"
	AssessmentStatusInProgress = "In Progress"
	AssessmentStatusCompleted  = "Completed"
)

const (
	QuestionTypeText           = "text"
	QuestionTypeNumber         = "number"
	QuestionTypeMultipleChoice = "multipleChoice"
	QuestionTypeCheckboxes     = "checkboxes"
)

const (
	TimelineMessageCreated   = "Response created"
	TimelineMessageStarted   = "Response started"
	TimelineMessageSubmitted = "Response submitted"
)

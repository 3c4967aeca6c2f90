package constvars

const (
	ResponseUnknown = "unknown"

	DeleteAccountSuccessMessage    = "Account deleted successfully"
	DeleteContactSuccessMessage    = "Contact deleted successfully"
	DeleteAssessmentSuccessMessage = "Assessment deleted successfully"
)

const (
	EntityAccount    = "account"
	EntityContact    = "contact"
	EntityTemplate   = "template"
	EntityAssessment = "assessment"
	EntityResponse   = "response"
)

const (
	HealthStatusOK          = "ok"
	HealthStatusDegraded    = "degraded"
	HealthStatusUnavailable = "unavailable"
)

package constvars

const (
	URLParamAccountID    = "account_id"
	URLParamContactID    = "contact_id"
	URLParamTemplateID   = "template_id"
	URLParamAssessmentID = "assessment_id"
	URLParamResponseID   = "response_id"
)

const (
	QueryParamAssessmentID = "assessmentId"
)

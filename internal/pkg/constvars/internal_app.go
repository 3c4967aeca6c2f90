package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SQLITE_TX_KEY            ContextKey = "sqlite_tx"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
)

const (
	REQUEST_ID_PREFIX = "BRM_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	SubmitPolicyTrustClient    = "trust_client"
	SubmitPolicyRequireAnswers = "require_answers"
)

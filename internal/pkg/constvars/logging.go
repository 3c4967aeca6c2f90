package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResponseCountKey  = "response_count"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingCollectionKey     = "collection"
	LoggingCountKey          = "count"
	LoggingAccountIDKey      = "account_id"
	LoggingContactIDKey      = "contact_id"
	LoggingTemplateIDKey     = "template_id"
	LoggingAssessmentIDKey   = "assessment_id"
	LoggingResponseIDKey     = "response_id"
	LoggingSectionIDKey      = "section_id"
	LoggingQuestionIDKey     = "question_id"
	LoggingStatusKey         = "status"
	LoggingLockKey           = "lock_key"
	LoggingLockValueKey      = "lock_value"
	LoggingQueueKey          = "queue"
	LoggingCascadeDeletedKey = "cascade_deleted"
	LoggingOperationKey      = "operation"
	LoggingIndexKey          = "index"
)

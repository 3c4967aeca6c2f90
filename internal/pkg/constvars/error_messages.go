package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "too many requests"
	ErrClientRouteNotFound                 = "Route not found"
	ErrClientAccountNotFound               = "Account not found"
	ErrClientContactNotFound               = "Contact not found"
	ErrClientTemplateNotFound              = "Template not found"
	ErrClientAssessmentNotFound            = "Assessment not found"
	ErrClientResponseNotFound              = "Response not found"
	ErrClientResponseAlreadyExists         = "A response already exists for this assessment"
	ErrClientInvalidStatusTransition       = "Response status cannot move backwards"
	ErrClientMissingRequiredAnswers        = "Required questions are not answered"
	ErrClientFailedToFetch                 = "Failed to fetch %s"
	ErrClientFailedToUpdate                = "Failed to update %s"
	ErrClientFailedToDelete                = "Failed to delete %s"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON         = "cannot parse JSON"
	ErrDevCannotReadBody          = "cannot read request body"
	ErrDevPanicRecovered          = "panic recovered: %v"
	ErrDevRateLimited             = "rate limit exceeded"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevValidationFailed        = "validation failed"
	ErrDevDocumentNotFound        = "document not found"
	ErrDevServerProcess           = "failed to process request on server"
	ErrDevServerDeadlineExceeded  = "deadline exceeded"
	ErrDevStorageRead             = "failed to read collection %s"
	ErrDevStorageWrite            = "failed to write collection %s"
	ErrDevStorageDelete           = "failed to delete from collection %s"
	ErrDevResponseAlreadyExists   = "response already exists for assessment %s"
	ErrDevInvalidStatusTransition = "invalid response status transition from %q to %q"
	ErrDevMissingRequiredAnswers  = "required questions without answers: %s"
	ErrDevLockNotAcquired         = "failed to acquire lock %s"
	ErrDevLockNotOwned            = "lock %s not owned by this client"
	ErrDevRedisGet                = "failed to get data from redis"
	ErrDevRedisSet                = "failed to set data into redis"
	ErrDevRedisDelete             = "failed to delete data from redis"
	ErrDevMinioGetObject          = "failed to get object from bucket %s"
	ErrDevMinioPutObject          = "failed to put object into bucket %s"
	ErrDevRabbitMQPublish         = "failed to publish message into queue %s"
)

// Validation messages, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of %s",
	"min":      "must be at least %s",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
}

package constvars

// Collection names double as flat-file document names, sqlite tables and mongo collections.
const (
	CollectionAccounts    = "accounts"
	CollectionContacts    = "contacts"
	CollectionTemplates   = "templates"
	CollectionAssessments = "assessments"
	CollectionResponses   = "responses"
)

// Reference fields hold the foreign key each collection is indexed by.
const (
	ReferenceFieldContactAccount     = "AccountId"
	ReferenceFieldAssessmentAccount  = "accountId"
	ReferenceFieldResponseAssessment = "assessmentId"
)

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
	StorageDriverMongo  = "mongo"
)

const (
	FileBackendLocal = "local"
	FileBackendMinio = "minio"
)

const (
	LockerDriverMemory = "memory"
	LockerDriverRedis  = "redis"
)

const (
	EventsDriverNone     = "none"
	EventsDriverRabbitMQ = "rabbitmq"
)

const (
	LockKeyCollectionFormat         = "brm:lock:collection:%s"
	LockKeyResponseFormat           = "brm:lock:response:%s"
	LockKeyAssessmentResponseFormat = "brm:lock:assessment-response:%s"
	LockKeyEntityFormat             = "brm:lock:entity:%s:%s"
)

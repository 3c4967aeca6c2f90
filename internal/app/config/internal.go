package config

type InternalConfig struct {
	App    App
	Locker AppLocker
	Events AppEvents
}

type App struct {
	Env                     string `validate:"oneof=development production"`
	Port                    string `validate:"required"`
	Version                 string
	Timezone                string
	EndpointPrefix          string
	StaticDir               string
	CorsAllowedOrigins      []string
	MaxRequests             int    `validate:"min=0"`
	ShutdownTimeout         int    `validate:"min=0"`
	RequestTimeoutInSeconds int    `validate:"min=1"`
	SubmitPolicy            string `validate:"oneof=trust_client require_answers"`
	SeedTemplates           bool
}

type AppLocker struct {
	Driver           string `validate:"oneof=memory redis"`
	TTLInSeconds     int    `validate:"min=1"`
	RetriesPerSecond int    `validate:"min=1"`
}

type AppEvents struct {
	Driver              string `validate:"oneof=none rabbitmq"`
	ResponseEventsQueue string
}

package messaging

import (
	"time"

	"brm-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const connectionName = "brm-service"

// NewRabbitMQ dials the broker with a named connection so it can be told apart
// in the management UI.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     driverConfig.RabbitMQ.Port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    driverConfig.RabbitMQ.Vhost,
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(uri.String(), amqp091.Config{
		Heartbeat:  10 * time.Second,
		Locale:     "en_US",
		Properties: properties,
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to rabbitMQ at %s:%d: %s", uri.Host, uri.Port, err.Error())
	}
	logrus.Printf("Successfully connected to rabbitMQ vhost %s", uri.Vhost)
	return conn
}

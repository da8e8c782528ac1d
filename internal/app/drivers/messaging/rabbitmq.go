package messaging

import (
	"fmt"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) (*amqp091.Connection, error) {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	log.Info("Successfully connected to rabbitMQ", zap.String("host", driverConfig.RabbitMQ.Host))
	return conn, nil
}

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const defaultDeliveryFee = "10"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	MongoURI               string
	MongoDatabase          string
	KafkaHost              string
	KafkaOrderChangedTopic string
	JWTSecret              string
	OutboxRelaySchedule    string
	DeliveryFee            string
}

// DSN builds the postgres connection string in key=value form.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Validate reports every missing setting at once.
func (c Config) Validate() error {
	required := map[string]string{
		"HTTP_PORT":                 c.HTTPPort,
		"DB_HOST":                   c.DBHost,
		"DB_PORT":                   c.DBPort,
		"DB_USER":                   c.DBUser,
		"DB_NAME":                   c.DBName,
		"MONGO_URI":                 c.MongoURI,
		"MONGO_DATABASE":            c.MongoDatabase,
		"KAFKA_HOST":                c.KafkaHost,
		"KAFKA_ORDER_CHANGED_TOPIC": c.KafkaOrderChangedTopic,
		"JWT_SECRET":                c.JWTSecret,
	}

	var missing []string
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DeliveryFeeAmount parses DELIVERY_FEE, defaulting to 10.
func (c Config) DeliveryFeeAmount() (kernel.Money, error) {
	raw := strings.TrimSpace(c.DeliveryFee)
	if raw == "" {
		raw = defaultDeliveryFee
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("DELIVERY_FEE", err)
	}
	return kernel.NewMoney(amount)
}

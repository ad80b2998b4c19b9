package cmd

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		HTTPPort:               "8082",
		DBHost:                 "localhost",
		DBPort:                 "5432",
		DBUser:                 "user",
		DBPassword:             "secret",
		DBName:                 "marketplace",
		MongoURI:               "mongodb://localhost:27017",
		MongoDatabase:          "catalog",
		KafkaHost:              "localhost:9092, localhost:9093,",
		KafkaOrderChangedTopic: "order.changed",
		JWTSecret:              "jwt",
	}
}

func TestConfig_DSN_DefaultsSSLMode(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=user password=secret dbname=marketplace sslmode=disable",
		validConfig().DSN())
}

func TestConfig_KafkaBrokers(t *testing.T) {
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, validConfig().KafkaBrokers())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.JWTSecret = ""
	c.DBHost = " "
	err := c.Validate()

	assert.EqualError(t, err, "missing configuration: DB_HOST, JWT_SECRET")
}

func TestConfig_DeliveryFeeAmount(t *testing.T) {
	c := validConfig()

	fee, err := c.DeliveryFeeAmount()
	require.NoError(t, err)
	ten, _ := kernel.NewMoneyFromInt(10)
	assert.True(t, fee.IsEqual(ten))

	c.DeliveryFee = "12.50"
	fee, err = c.DeliveryFeeAmount()
	require.NoError(t, err)
	assert.Equal(t, "12.50", fee.String())

	c.DeliveryFee = "ten"
	_, err = c.DeliveryFeeAmount()
	assert.Error(t, err)

	c.DeliveryFee = "-1"
	_, err = c.DeliveryFeeAmount()
	assert.Error(t, err)
}

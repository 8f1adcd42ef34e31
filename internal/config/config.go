package config

import "os"

type Config struct {
	Service ServiceConfig
	Mongo   MongoConfig
	Rabbit  RabbitConfig
	Consul  ConsulConfig
}

type ServiceConfig struct {
	Name    string
	Port    string
	Address string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RabbitConfig struct {
	URI      string
	Exchange string
	// Queue consumed for distractor-generation results.
	DistractorQueue string
}

type ConsulConfig struct {
	Address string
}

func Load() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "reorder-service"),
			Port:    getEnv("SERVICE_PORT", "6677"),
			Address: getEnv("SERVICE_ADDRESS", "localhost"),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGO_URI"),
			Database: getEnv("MONGO_DATABASE", "reorder_service"),
		},
		Rabbit: RabbitConfig{
			URI:             os.Getenv("RABBITMQ_URI"),
			Exchange:        getEnv("RABBITMQ_EXCHANGE", "evolvia.events"),
			DistractorQueue: getEnv("RABBITMQ_DISTRACTOR_QUEUE", "reorder.distractors"),
		},
		Consul: ConsulConfig{
			Address: os.Getenv("CONSUL_ADDRESS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

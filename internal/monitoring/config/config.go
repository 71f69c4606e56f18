package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Kafka         KafkaConfig
	Mail          MailConfig
	Monitoring    MonitoringConfig
	Remediation   RemediationConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" required:"true"`
	Port     int           `envconfig:"REDIS_PORT" required:"true"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30s"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type KafkaConfig struct {
	Brokers           []string `envconfig:"KAFKA_BROKERS" required:"true"`
	HealthEventsTopic string   `envconfig:"KAFKA_HEALTH_EVENTS_TOPIC" default:"monitoring.health-events"`
	ConsumerGroupID   string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"monitoring-dashboard"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" required:"true"`
	Password         string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string `envconfig:"MAIL_HOST" required:"true"`
	Port             int    `envconfig:"MAIL_PORT" required:"true"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_ADDRESS" required:"true"`
}

type MonitoringConfig struct {
	CheckInterval     time.Duration `envconfig:"MONITORING_CHECK_INTERVAL" default:"30s"`
	RollupInterval    time.Duration `envconfig:"MONITORING_ROLLUP_INTERVAL" default:"5m"`
	BatchSize         int           `envconfig:"MONITORING_BATCH_SIZE" default:"10"`
	WorkerCount       int           `envconfig:"MONITORING_WORKER_COUNT" default:"10"`
	IncidentRetention time.Duration `envconfig:"MONITORING_INCIDENT_RETENTION" default:"720h"`
}

type RemediationConfig struct {
	ProviderURL    string        `envconfig:"REMEDIATION_PROVIDER_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"REMEDIATION_REQUEST_TIMEOUT" default:"30s"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

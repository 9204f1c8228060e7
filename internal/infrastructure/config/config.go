package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quotedesk/internal/domain/entities"
)

const (
	ArchiveBackendNone     = "none"
	ArchiveBackendDynamoDB = "dynamodb"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is read once at startup from the environment (.env is autoloaded by main).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - WORK_QUEUE_SEED_FILE (optional; YAML, replaces the bundled seed)
//   - ARCHIVE_BACKEND none|dynamodb (default: none)
//   - QUOTATIONS_TABLE (default: quotations)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - MINIO_ENDPOINT (optional; empty disables logo and document uploads)
//   - MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_BUCKET, MINIO_REGION, MINIO_USE_SSL, MINIO_EXPIRE_DAYS
//   - DELIVERY_MOCK_FAIL_METHODS (comma separated: email,whatsapp)
//   - DELIVERY_CONCURRENCY (default: 4)
type Config struct {
	Port              string
	WorkQueueSeedFile string
	Archive           ArchiveConfig
	DynamoDB          DynamoDBConfig
	Minio             MinioConfig
	Delivery          DeliveryConfig
}

type ArchiveConfig struct {
	Backend string
	Table   string
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type MinioConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	Region     string
	UseSSL     bool
	ExpireDays int
}

// Enabled reports whether object storage was configured at all.
func (c MinioConfig) Enabled() bool {
	return c.Endpoint != ""
}

type DeliveryConfig struct {
	FailMethods []entities.SendMethod
	Concurrency int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getenvDefault("PORT", "8080"),
		WorkQueueSeedFile: strings.TrimSpace(os.Getenv("WORK_QUEUE_SEED_FILE")),
		Archive: ArchiveConfig{
			Backend: strings.ToLower(getenvDefault("ARCHIVE_BACKEND", ArchiveBackendNone)),
			Table:   getenvDefault("QUOTATIONS_TABLE", "quotations"),
		},
		DynamoDB: DynamoDBConfig{
			Region:   getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenvDefault("MINIO_BUCKET", "quotedesk"),
			Region:    getenvDefault("MINIO_REGION", "us-east-1"),
		},
	}

	switch cfg.Archive.Backend {
	case ArchiveBackendNone, ArchiveBackendDynamoDB:
	default:
		return nil, fmt.Errorf("%w: ARCHIVE_BACKEND=%q", ErrInvalidConfig, cfg.Archive.Backend)
	}

	var err error
	if cfg.Minio.UseSSL, err = getenvBool("MINIO_USE_SSL", false); err != nil {
		return nil, err
	}
	if cfg.Minio.ExpireDays, err = getenvInt("MINIO_EXPIRE_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.Delivery.Concurrency, err = getenvInt("DELIVERY_CONCURRENCY", 4); err != nil {
		return nil, err
	}
	if cfg.Delivery.Concurrency < 1 {
		return nil, fmt.Errorf("%w: DELIVERY_CONCURRENCY must be positive", ErrInvalidConfig)
	}

	for _, raw := range strings.Split(os.Getenv("DELIVERY_MOCK_FAIL_METHODS"), ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		m, err := entities.ParseSendMethod(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: DELIVERY_MOCK_FAIL_METHODS contains %q", ErrInvalidConfig, raw)
		}
		cfg.Delivery.FailMethods = append(cfg.Delivery.FailMethods, m)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
	}
	return b, nil
}

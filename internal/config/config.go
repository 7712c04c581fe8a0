// Package config loads the server configuration from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

// Names of the key-value backends the record can be stored in.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
	StoreDynamoDB = "dynamodb"
	StoreS3       = "s3"
)

var Stores = []string{StoreMemory, StoreFile, StoreSQLite, StoreRedis, StoreDynamoDB, StoreS3}

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	CreatedBy string
}

type ServerConfig struct {
	Addr         string
	CertFile     string
	KeyFile      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig selects the backend and carries the settings of every backend.
type StoreConfig struct {
	Backend string
	Key     string

	FilePath   string
	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AWSRegion   string
	AWSEndpoint string
	TableName   string
	Bucket      string
}

// Load reads the configuration from the environment, with optional .env file.
// Variables that are set but malformed are reported rather than defaulted.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	var p envParser
	cfg := &Config{
		Server: ServerConfig{
			Addr:         env("ADDR", ":8080"),
			CertFile:     env("CERT_FILE", ""),
			KeyFile:      env("CERT_KEY", ""),
			ReadTimeout:  p.duration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout: p.duration("WRITE_TIMEOUT", 15*time.Second),
		},
		Store: StoreConfig{
			Backend:       env("STORE", StoreMemory),
			Key:           env("STORE_KEY", "videoData"),
			FilePath:      env("STORE_FILE", "molpashow.json"),
			SQLitePath:    env("SQLITE_PATH", "molpashow.db"),
			RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
			RedisPassword: env("REDIS_PASSWORD", ""),
			RedisDB:       p.int("REDIS_DB", 0),
			AWSRegion:     env("AWS_REGION", ""),
			AWSEndpoint:   env("AWS_ENDPOINT", ""),
			TableName:     env("AWS_DB_VOD_NAME", ""),
			Bucket:        env("AWS_S3_VOD_BUCKET", ""),
		},
		CreatedBy: env("CREATED_BY", "Demo User"),
	}
	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the selected backend has the settings it needs.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server address must be required")
	}
	if (c.Server.CertFile == "") != (c.Server.KeyFile == "") {
		return errors.New("TLS certificate and key must be given together")
	}
	return c.Store.Validate()
}

func (s *StoreConfig) Validate() error {
	if !slices.Contains(Stores, s.Backend) {
		return fmt.Errorf("unknown store %q, expected one of %v", s.Backend, Stores)
	}
	if s.Key == "" {
		return errors.New("store key must be required")
	}
	switch s.Backend {
	case StoreFile:
		if s.FilePath == "" {
			return errors.New("STORE_FILE must be required for the file store")
		}
	case StoreSQLite:
		if s.SQLitePath == "" {
			return errors.New("SQLITE_PATH must be required for the sqlite store")
		}
	case StoreRedis:
		if s.RedisAddr == "" {
			return errors.New("REDIS_ADDR must be required for the redis store")
		}
	case StoreDynamoDB:
		if s.TableName == "" {
			return errors.New("AWS_DB_VOD_NAME must be required for the dynamodb store")
		}
	case StoreS3:
		if s.Bucket == "" {
			return errors.New("AWS_S3_VOD_BUCKET must be required for the s3 store")
		}
	}
	return nil
}

// Get the value of environment variables.
func env(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// envParser reads typed variables and collects the malformed ones.
type envParser struct {
	errs []error
}

func (p *envParser) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return def
	}
	return n
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return def
	}
	return d
}

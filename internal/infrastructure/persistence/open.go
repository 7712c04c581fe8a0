package persistence

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/molpadia/molpashow/internal/config"
	"github.com/molpadia/molpashow/internal/domain/repository"
	"go.uber.org/zap"
)

// Open the key-value backend selected by the configuration.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (repository.KeyValueStore, error) {
	logger = logger.With(zap.String("store", cfg.Backend))
	switch cfg.Backend {
	case config.StoreMemory:
		logger.Warn("the video record is kept in memory and lost on restart")
		return NewMemoryStore(), nil
	case config.StoreFile:
		s, err := NewFileStore(cfg.FilePath, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("opened store file", zap.String("path", cfg.FilePath))
		return s, nil
	case config.StoreSQLite:
		s, err := NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("opened sqlite database", zap.String("path", cfg.SQLitePath))
		return s, nil
	case config.StoreRedis:
		s, err := DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		logger.Info("redis client connected", zap.String("addr", cfg.RedisAddr))
		return s, nil
	case config.StoreDynamoDB, config.StoreS3:
		sess, err := newSession(cfg)
		if err != nil {
			return nil, &StoreError{Op: "open", Backend: cfg.Backend, Err: err}
		}
		if cfg.Backend == config.StoreS3 {
			logger.Info("using s3 bucket", zap.String("bucket", cfg.Bucket))
			return NewS3Store(sess, cfg.Bucket), nil
		}
		logger.Info("using dynamodb table", zap.String("table", cfg.TableName))
		return NewDynamoDBStore(sess, cfg.TableName), nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Backend)
}

// Build an AWS session from the shared credential chain, with optional region and
// endpoint overrides for local emulators.
func newSession(cfg config.StoreConfig) (*session.Session, error) {
	awsCfg := &aws.Config{}
	if cfg.AWSRegion != "" {
		awsCfg.Region = aws.String(cfg.AWSRegion)
	}
	if cfg.AWSEndpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.AWSEndpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	return session.NewSessionWithOptions(session.Options{
		Config:            *awsCfg,
		SharedConfigState: session.SharedConfigEnable,
	})
}

package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/molpadia/molpashow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	mr := miniredis.RunT(t)

	var tests = []struct {
		cfg  config.StoreConfig
		want interface{}
	}{
		{config.StoreConfig{Backend: config.StoreMemory}, &MemoryStore{}},
		{config.StoreConfig{Backend: config.StoreFile, FilePath: filepath.Join(dir, "store.json")}, &FileStore{}},
		{config.StoreConfig{Backend: config.StoreSQLite, SQLitePath: filepath.Join(dir, "store.db")}, &SQLiteStore{}},
		{config.StoreConfig{Backend: config.StoreRedis, RedisAddr: mr.Addr()}, &RedisStore{}},
		{config.StoreConfig{Backend: config.StoreDynamoDB, TableName: "vod", AWSRegion: "us-east-1"}, &DynamoDBStore{}},
		{config.StoreConfig{Backend: config.StoreS3, Bucket: "vod", AWSRegion: "us-east-1", AWSEndpoint: "http://localhost:4566"}, &S3Store{}},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.Backend, func(t *testing.T) {
			s, err := Open(context.Background(), tt.cfg, zaptest.NewLogger(t))
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Backend: "mongo"}, zaptest.NewLogger(t))
	assert.EqualError(t, err, `unknown store "mongo"`)
}

package blob

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Blob storage configuration environment variables.
const (
	EnvDriver      = "TQMCORE_BLOB_DRIVER"
	EnvFSRoot      = "TQMCORE_BLOB_FS_ROOT"
	EnvS3Bucket    = "TQMCORE_BLOB_S3_BUCKET"
	EnvS3Region    = "TQMCORE_BLOB_S3_REGION"
	EnvS3Endpoint  = "TQMCORE_BLOB_S3_ENDPOINT"
	EnvS3Prefix    = "TQMCORE_BLOB_S3_PREFIX"
	EnvS3AccessKey = "TQMCORE_BLOB_S3_ACCESS_KEY"
	EnvS3SecretKey = "TQMCORE_BLOB_S3_SECRET_KEY"
)

const defaultFSRoot = "data/artifacts"

// OpenStoreFromEnv selects an artifact store driver from the environment.
// Recognized drivers are "memory", "fs", and "s3"; fs is the default.
func OpenStoreFromEnv(ctx context.Context) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv(EnvDriver)))
	switch driver {
	case "", "fs":
		root := os.Getenv(EnvFSRoot)
		if root == "" {
			root = defaultFSRoot
		}
		return NewFSStore(root)
	case "memory":
		return NewMemoryStore(), nil
	case "s3":
		cfg := S3Config{
			Bucket:    os.Getenv(EnvS3Bucket),
			Region:    os.Getenv(EnvS3Region),
			Endpoint:  os.Getenv(EnvS3Endpoint),
			Prefix:    os.Getenv(EnvS3Prefix),
			AccessKey: os.Getenv(EnvS3AccessKey),
			SecretKey: os.Getenv(EnvS3SecretKey),
		}
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("%s is required for the s3 driver", EnvS3Bucket)
		}
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", driver)
	}
}

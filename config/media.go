package config

import (
	"context"
	"os"
	"strconv"
	"strings"

	"hotel-backoffice/services"
)

// ConnectMediaStore builds the MinIO-backed media store from environment
// variables.
func ConnectMediaStore(ctx context.Context) (*services.MinioStore, error) {
	endpoint := envOrDefault("MINIO_ENDPOINT", "127.0.0.1:9000")
	accessKey := envOrDefault("MINIO_ACCESS_KEY", "minioadmin")
	secretKey := envOrDefault("MINIO_SECRET_KEY", "minioadmin")
	bucket := envOrDefault("MINIO_BUCKET", "room-images")
	baseURL := strings.TrimSpace(os.Getenv("MEDIA_BASE_URL"))

	useSSL, err := strconv.ParseBool(envOrDefault("MINIO_USE_SSL", "false"))
	if err != nil {
		useSSL = false
	}

	return services.NewMinioStore(ctx, endpoint, accessKey, secretKey, bucket, baseURL, useSSL)
}

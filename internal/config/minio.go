package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinIOClient connects to object storage and ensures the album bucket
// exists with anonymous read access on the media prefixes.
func NewMinIOClient(cfg *Config) (*minio.Client, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinIOBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinIOBucket, err)
		}
		log.Printf("created media bucket %s", cfg.MinIOBucket)
	}

	// Originals and thumbnails are served straight from the bucket, so
	// only those prefixes are publicly readable.
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource": []string{
					"arn:aws:s3:::" + cfg.MinIOBucket + "/photos/*",
					"arn:aws:s3:::" + cfg.MinIOBucket + "/thumbs/*",
				},
			},
		},
	}
	policyJSON, _ := json.Marshal(policy)
	if err := client.SetBucketPolicy(ctx, cfg.MinIOBucket, string(policyJSON)); err != nil {
		log.Printf("warning: could not set bucket policy: %v", err)
	}

	return client, nil
}

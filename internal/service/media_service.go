package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/nfnt/resize"

	"github.com/leo-lightfoot/travel-photo-album/internal/config"
)

const thumbMaxPx = 480

// StoredMedia holds the object paths and public URLs of one uploaded
// photo. ThumbURL is empty when the source could not be decoded for
// thumbnailing; clients fall back to the full image.
type StoredMedia struct {
	MediaURL  string
	ThumbURL  string
	MediaPath string
	ThumbPath string
}

type MediaService interface {
	Store(ctx context.Context, fileName, mimeType string, size int64, reader io.Reader) (*StoredMedia, error)
	Remove(ctx context.Context, media *StoredMedia)
}

type mediaService struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewMediaService(minioClient *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{minioClient: minioClient, cfg: cfg}
}

// Store uploads the original photo and a generated thumbnail under a
// month-partitioned path and returns their public URLs.
func (s *mediaService) Store(ctx context.Context, fileName, mimeType string, size int64, reader io.Reader) (*StoredMedia, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	id := uuid.New()
	month := time.Now().Format("2006/01")
	ext := strings.ToLower(filepath.Ext(fileName))

	stored := &StoredMedia{
		MediaPath: fmt.Sprintf("photos/%s/%s%s", month, id.String(), ext),
	}

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, stored.MediaPath,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	stored.MediaURL = s.publicURL(stored.MediaPath)

	if thumb, err := makeThumbnail(data); err == nil {
		stored.ThumbPath = fmt.Sprintf("thumbs/%s/%s.jpg", month, id.String())
		_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, stored.ThumbPath,
			bytes.NewReader(thumb), int64(len(thumb)), minio.PutObjectOptions{ContentType: "image/jpeg"})
		if err != nil {
			stored.ThumbPath = ""
		} else {
			stored.ThumbURL = s.publicURL(stored.ThumbPath)
		}
	}

	return stored, nil
}

// Remove deletes the stored objects, compensating a failed pin insert.
func (s *mediaService) Remove(ctx context.Context, media *StoredMedia) {
	if media == nil {
		return
	}
	if media.MediaPath != "" {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, media.MediaPath, minio.RemoveObjectOptions{})
	}
	if media.ThumbPath != "" {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, media.ThumbPath, minio.RemoveObjectOptions{})
	}
}

func (s *mediaService) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}

func makeThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	thumb := resize.Thumbnail(thumbMaxPx, thumbMaxPx, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

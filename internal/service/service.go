package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"github.com/leo-lightfoot/travel-photo-album/internal/config"
	"github.com/leo-lightfoot/travel-photo-album/internal/repository"
)

type Services struct {
	Auth    AuthService
	Pin     PinService
	Media   MediaService
	Geocode GeocodeService
	Map     MapService
	Upload  UploadService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	authService := NewAuthService(redis, cfg)
	pinService := NewPinService(repos.Pin, redis)
	mediaService := NewMediaService(minioClient, cfg)
	geocodeService := NewGeocodeService(cfg)
	mapService := NewMapService(pinService)
	uploadService := NewUploadService(pinService, mediaService)

	return &Services{
		Auth:    authService,
		Pin:     pinService,
		Media:   mediaService,
		Geocode: geocodeService,
		Map:     mapService,
		Upload:  uploadService,
	}
}

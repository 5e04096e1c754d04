package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/leo-lightfoot/travel-photo-album/internal/config"
	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
)

// GeocodeService resolves coordinates to a best-effort place name. Every
// failure degrades to an empty Place; lookups are never retried and never
// block an upload.
type GeocodeService interface {
	Reverse(ctx context.Context, lat, lon float64) domain.Place
}

type geocodeService struct {
	client  *http.Client
	baseURL string
}

func NewGeocodeService(cfg *config.Config) GeocodeService {
	return &geocodeService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.NominatimURL,
	}
}

type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		Country string `json:"country"`
	} `json:"address"`
}

func (s *geocodeService) Reverse(ctx context.Context, lat, lon float64) domain.Place {
	endpoint := fmt.Sprintf("%s/reverse?%s", s.baseURL, url.Values{
		"format": {"json"},
		"lat":    {fmt.Sprintf("%f", lat)},
		"lon":    {fmt.Sprintf("%f", lon)},
		"zoom":   {"10"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Place{}
	}
	req.Header.Set("User-Agent", "TravelPhotoAlbum/1.0")
	req.Header.Set("Accept-Language", "en")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Place{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Place{}
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Place{}
	}

	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.Village
	}
	if city == "" {
		city = body.Address.County
	}

	return domain.Place{City: city, Country: body.Address.Country}
}

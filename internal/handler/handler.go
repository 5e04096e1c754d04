package handler

import "github.com/leo-lightfoot/travel-photo-album/internal/service"

type Handlers struct {
	Auth     *AuthHandler
	Pin      *PinHandler
	Map      *MapHandler
	Timeline *TimelineHandler
	Upload   *UploadHandler
	Geocode  *GeocodeHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		Pin:      NewPinHandler(services.Pin),
		Map:      NewMapHandler(services.Map),
		Timeline: NewTimelineHandler(services.Pin),
		Upload:   NewUploadHandler(services.Upload),
		Geocode:  NewGeocodeHandler(services.Geocode),
	}
}

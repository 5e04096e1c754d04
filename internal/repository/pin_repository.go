package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
)

type PinRepository interface {
	Create(ctx context.Context, pin *domain.Pin) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
	List(ctx context.Context) ([]domain.Pin, error)
}

type pinRepository struct {
	db *sqlx.DB
}

func NewPinRepository(db *sqlx.DB) PinRepository {
	return &pinRepository{db: db}
}

func (r *pinRepository) Create(ctx context.Context, pin *domain.Pin) error {
	query := `
		INSERT INTO travel_pins (pin_id, title, description, tags, media_url, thumb_url, photo_date, latitude, longitude, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		pin.ID, pin.Title, pin.Description, pin.Tags,
		pin.MediaURL, pin.ThumbURL, pin.PhotoDate,
		pin.Latitude, pin.Longitude, pin.City, pin.Country,
	).Scan(&pin.CreatedAt)
}

func (r *pinRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	var pin domain.Pin
	query := `SELECT * FROM travel_pins WHERE pin_id = $1`
	if err := r.db.GetContext(ctx, &pin, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPinNotFound
		}
		return nil, err
	}
	return &pin, nil
}

// List returns every pin ordered by photo date descending, the ordering
// contract the timeline relies on.
func (r *pinRepository) List(ctx context.Context) ([]domain.Pin, error) {
	var pins []domain.Pin
	query := `SELECT * FROM travel_pins ORDER BY photo_date DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &pins, query)
	return pins, err
}

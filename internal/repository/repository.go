package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Pin PinRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Pin: NewPinRepository(db),
	}
}

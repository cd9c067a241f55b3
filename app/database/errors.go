package database

import (
	"database/sql"
	"errors"
)

// ErrNotFound marks a referenced entity id that does not exist, as opposed
// to one that exists but has no data.
var ErrNotFound = errors.New("record not found")

// ErrInvalidDates marks a session or term whose end date does not come
// after its start date.
var ErrInvalidDates = errors.New("end date must be after start date")

// trapNoRows maps the driver's no-rows error to ErrNotFound.
func trapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

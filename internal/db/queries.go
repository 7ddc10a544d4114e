package db

import (
	"database/sql"
	"time"

	"github.com/radityo/dayplan/internal/errors"
)

// GetSlot retrieves the value stored under key.
// An absent slot is not an error; found reports whether the key exists.
func GetSlot(db *sql.DB, key string) (value string, found bool, err error) {
	query := `SELECT value FROM slots WHERE key = ?`

	row := db.QueryRow(query, key)
	if scanErr := row.Scan(&value); scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, errors.NewInternal(scanErr)
	}

	return value, true, nil
}

// PutSlot stores value under key, overwriting any previous value.
func PutSlot(db *sql.DB, key, value string) error {
	query := `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := db.Exec(query, key, value, time.Now().Unix()); err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// DeleteSlot removes the slot stored under key. Deleting an absent slot is a no-op.
func DeleteSlot(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM slots WHERE key = ?`, key); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

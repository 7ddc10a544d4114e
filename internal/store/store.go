package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/db"
	"github.com/radityo/dayplan/internal/errors"
)

// Slot is the fixed key under which the whole activity collection is
// persisted as a single JSON document.
const Slot = "activities"

// CorruptSlot receives the previous document when the primary slot fails to
// parse, so a malformed blob is preserved rather than silently overwritten.
const CorruptSlot = "activities.corrupt"

// Store owns the in-memory ordered collection of activities and mirrors it
// wholesale to the key-value slot on every mutation.
//
// Mutations by unknown id report a miss through the found return value; the
// ops layer maps a miss to NOT_FOUND. A persist failure is returned to the
// caller after the in-memory change has applied, so memory may lead disk
// until the next successful write.
type Store struct {
	database *sql.DB
	items    []activity.Activity
}

// Draft holds the caller-supplied fields of a new activity. The store
// assigns the id and completion state; it performs no validation and trusts
// the ops boundary.
type Draft struct {
	Name        string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Category    activity.Category
}

// Open loads the persisted collection from the activities slot.
// An absent slot yields an empty collection. A malformed document is moved
// aside to the corrupt slot and the store starts empty; the next successful
// mutation rewrites the primary slot.
func Open(database *sql.DB) (*Store, error) {
	s := &Store{database: database, items: []activity.Activity{}}

	raw, found, err := db.GetSlot(database, Slot)
	if err != nil {
		return nil, err
	}
	if !found {
		return s, nil
	}

	var items []activity.Activity
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("warning: %v; starting with an empty collection (original preserved in slot %q)",
			errors.NewCorruptData(Slot, err), CorruptSlot)
		if putErr := db.PutSlot(database, CorruptSlot, raw); putErr != nil {
			return nil, putErr
		}
		return s, nil
	}

	if items != nil {
		s.items = items
	}
	return s, nil
}

// Add assigns a fresh id to the draft, appends it with isCompleted=false,
// and persists the collection.
func (s *Store) Add(d Draft) (activity.Activity, error) {
	id, err := generateULID()
	if err != nil {
		return activity.Activity{}, errors.NewInternal(err)
	}

	a := activity.Activity{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Category:    d.Category,
		IsCompleted: false,
	}

	s.items = append(s.items, a)
	return a, s.persist()
}

// Get returns the activity with the given id, if present.
func (s *Store) Get(id string) (activity.Activity, bool) {
	for _, a := range s.items {
		if a.ID == id {
			return a, true
		}
	}
	return activity.Activity{}, false
}

// Update replaces the record matching a.ID in place, preserving insertion
// order. It reports a miss when no record matches.
func (s *Store) Update(a activity.Activity) (found bool, err error) {
	for i := range s.items {
		if s.items[i].ID == a.ID {
			s.items[i] = a
			return true, s.persist()
		}
	}
	return false, nil
}

// Remove deletes the record matching id.
func (s *Store) Remove(id string) (found bool, err error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, s.persist()
		}
	}
	return false, nil
}

// ToggleComplete flips the completion flag of the record matching id and
// returns the updated record.
func (s *Store) ToggleComplete(id string) (a activity.Activity, found bool, err error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsCompleted = !s.items[i].IsCompleted
			return s.items[i], true, s.persist()
		}
	}
	return activity.Activity{}, false, nil
}

// All returns a defensive copy of the collection in insertion order.
func (s *Store) All() []activity.Activity {
	out := make([]activity.Activity, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of activities in the collection.
func (s *Store) Len() int {
	return len(s.items)
}

// persist serializes the whole collection into the activities slot.
func (s *Store) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return errors.NewInternal(err)
	}
	return db.PutSlot(s.database, Slot, string(data))
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

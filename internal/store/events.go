package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Event represents one settled gesture transition.
type Event struct {
	ID        string
	Gesture   string
	Hand      string
	CreatedAt time.Time
}

// EventRepository provides access to the gesture event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert logs a gesture event. A missing ID is filled with a new UUID.
func (r *EventRepository) Insert(e *Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO gesture_events (id, gesture, hand, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Gesture, e.Hand, e.CreatedAt,
	)
	return err
}

// Recent retrieves the most recent events, newest first.
func (r *EventRepository) Recent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, gesture, hand, created_at FROM gesture_events
		 ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Gesture, &e.Hand, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Prune deletes events older than the given age.
func (r *EventRepository) Prune(olderThan time.Duration) error {
	_, err := r.db.Exec(
		`DELETE FROM gesture_events WHERE created_at < ?`,
		time.Now().Add(-olderThan),
	)
	return err
}

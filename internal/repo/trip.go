// Package repo contains all database access for the itinerary planner.
// Storage is a snapshot store: each trip is one JSONB document keyed by trip
// id, written after mutations and loaded wholesale at boot. No business
// logic lives here — the schedule store owns every invariant.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations behind the schedule store's
// load/save boundary. Callers treat saves as best-effort: a failed save is
// logged, never propagated into the scheduling engine.
type TripRepo interface {
	// Save upserts the trip document keyed by its id.
	Save(ctx context.Context, trip domain.Trip) error

	// Delete removes a trip document.
	// Returns domain.ErrNotFound if no row with that id exists.
	Delete(ctx context.Context, id string) error

	// Get retrieves one trip document by id.
	// Returns domain.ErrNotFound if no row with that id exists.
	Get(ctx context.Context, id string) (domain.Trip, error)

	// LoadAll returns every stored trip, oldest first — the boot-time load.
	LoadAll(ctx context.Context) ([]domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Save upserts the trip as a JSONB document.
func (r *pgTripRepo) Save(ctx context.Context, trip domain.Trip) error {
	doc, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Save: marshal: %w", err)
	}

	const q = `
		INSERT INTO itineraries (id, city_id, doc, created_at, updated_at)
		VALUES (@id, @city_id, @doc, @created_at, @updated_at)
		ON CONFLICT (id) DO UPDATE
		SET city_id    = EXCLUDED.city_id,
		    doc        = EXCLUDED.doc,
		    updated_at = EXCLUDED.updated_at`

	args := pgx.NamedArgs{
		"id":         trip.ID,
		"city_id":    trip.CityID,
		"doc":        doc,
		"created_at": trip.CreatedAt,
		"updated_at": trip.UpdatedAt,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.TripRepo.Save: %w", err)
	}
	return nil
}

// Delete removes a trip document by id.
func (r *pgTripRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM itineraries WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Get retrieves one trip document by id.
func (r *pgTripRepo) Get(ctx context.Context, id string) (domain.Trip, error) {
	const q = `SELECT doc FROM itineraries WHERE id = @id`

	var doc []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: %w", domain.ErrNotFound)
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: %w", err)
	}

	trip, err := unmarshalTrip(doc)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: %w", err)
	}
	return trip, nil
}

// LoadAll returns all stored trips ordered by creation time ascending, so
// the in-memory collection comes back in the order trips were made.
func (r *pgTripRepo) LoadAll(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT doc FROM itineraries ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.LoadAll: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("repo.TripRepo.LoadAll: scan: %w", err)
		}
		trip, err := unmarshalTrip(doc)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.LoadAll: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.LoadAll: rows: %w", err)
	}
	return trips, nil
}

// unmarshalTrip decodes a stored document back into a domain.Trip.
func unmarshalTrip(doc []byte) (domain.Trip, error) {
	var trip domain.Trip
	if err := json.Unmarshal(doc, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("unmarshal doc: %w", err)
	}
	return trip, nil
}

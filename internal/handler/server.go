// Package handler implements the HTTP surface over the scheduling engine.
// Handlers are methods on Server, split into resource-specific files
// (trip.go, day.go, item.go, ...) that all share the same struct.
//
// The engine itself never errors — unknown ids are no-ops by contract — so
// handlers that owe the client a 404 check existence explicitly before or
// after mutating.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
	"github.com/hyunwoo-ji/tabiori/internal/schedule"
	"github.com/hyunwoo-ji/tabiori/internal/wizard"
)

// Store is the scheduling engine surface handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: accept interfaces, return concrete types. *schedule.Store
// satisfies it.
type Store interface {
	CreateTrip(cityID, title string) domain.Trip
	DeleteTrip(tripID string)
	SetActiveTrip(tripID string)
	ActiveTrip() (domain.Trip, bool)
	GetTrip(tripID string) (domain.Trip, bool)
	ListTrips() []domain.Trip
	UpdateTrip(tripID string, upd schedule.TripUpdate) (domain.Trip, bool)
	AddDay(tripID string) (domain.DaySchedule, bool)
	RemoveDay(tripID, dayID string)
	AddItem(tripID, dayID, placeID string) (domain.ScheduleItem, bool)
	RemoveItem(tripID, dayID, itemID string)
	UpdateItem(tripID, dayID, itemID string, upd schedule.ItemUpdate) (domain.ScheduleItem, bool)
	MoveItem(tripID, sourceDayID, targetDayID, itemID string, newIndex int)
	AdoptTrip(t domain.Trip) domain.Trip
}

// Catalog is the read-only place catalog surface. *catalog.Catalog satisfies it.
type Catalog interface {
	Lookup(placeID string) (domain.Place, bool)
	Cities() []domain.City
	City(cityID string) (domain.City, bool)
	PlacesByCity(cityID string) []domain.Place
}

// Codec encodes and decodes share tokens. *share.Codec satisfies it.
type Codec interface {
	Encode(t domain.Trip) string
	Decode(token string) *domain.Trip
}

// Wizard computes the next wizard step. *wizard.Engine satisfies it.
type Wizard interface {
	NextStep(sel wizard.Selections) *wizard.StepInfo
}

// TripBuilder converts completed selections into a trip draft.
// *wizard.Builder satisfies it.
type TripBuilder interface {
	Build(sel wizard.Selections) *domain.Trip
}

// Saver is the optional persistence sink behind the store's save boundary.
// repo.TripRepo satisfies it. Nil means memory-only.
type Saver interface {
	Save(ctx context.Context, trip domain.Trip) error
	Delete(ctx context.Context, id string) error
}

// Deps carries everything a Server needs. Saver may be nil.
type Deps struct {
	Store   Store
	Catalog Catalog
	Codec   Codec
	Wizard  Wizard
	Builder TripBuilder
	Saver   Saver
	BaseURL string
	Log     *slog.Logger
}

// Server holds the handler dependencies.
type Server struct {
	store   Store
	catalog Catalog
	codec   Codec
	wizard  Wizard
	builder TripBuilder
	saver   Saver
	baseURL string
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(deps Deps) *Server {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		store:   deps.Store,
		catalog: deps.Catalog,
		codec:   deps.Codec,
		wizard:  deps.Wizard,
		builder: deps.Builder,
		saver:   deps.Saver,
		baseURL: deps.BaseURL,
		log:     log,
	}
}

// Router returns the chi router with every endpoint registered.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Get("/active", s.GetActiveTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Patch("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/activate", s.ActivateTrip)
			r.Get("/share", s.ShareTrip)
			r.Post("/days", s.AddDay)
			r.Post("/items/move", s.MoveItem)

			r.Route("/days/{dayID}", func(r chi.Router) {
				r.Delete("/", s.RemoveDay)
				r.Get("/travel", s.DayTravel)
				r.Post("/items", s.AddItem)
				r.Patch("/items/{itemID}", s.UpdateItem)
				r.Delete("/items/{itemID}", s.RemoveItem)
			})
		})
	})

	r.Get("/share/{token}", s.OpenShare)
	r.Post("/wizard/next", s.WizardNext)
	r.Post("/wizard/build", s.WizardBuild)

	r.Get("/cities", s.ListCities)
	r.Get("/cities/{cityID}/places", s.ListCityPlaces)
	r.Get("/places/{placeID}", s.GetPlace)

	return r
}

// persist writes the trip's current state through the saver, best-effort.
// Persistence failures are logged and swallowed: the in-memory state is the
// source of truth and the write will be retried on the next mutation.
func (s *Server) persist(ctx context.Context, tripID string) {
	if s.saver == nil {
		return
	}
	trip, ok := s.store.GetTrip(tripID)
	if !ok {
		return
	}
	if err := s.saver.Save(ctx, trip); err != nil {
		s.log.ErrorContext(ctx, "persist trip failed", "trip_id", tripID, "error", err)
	}
}

// persistDelete removes the trip's stored document, best-effort.
func (s *Server) persistDelete(ctx context.Context, tripID string) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Delete(ctx, tripID); err != nil {
		s.log.ErrorContext(ctx, "delete stored trip failed", "trip_id", tripID, "error", err)
	}
}

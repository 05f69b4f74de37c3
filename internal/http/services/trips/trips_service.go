// Package trips implementa la lógica de /trips sobre el repositorio.
package trips

import (
	"context"
	"time"

	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

// Service define las operaciones disponibles sobre trips.
type Service interface {
	List(ctx context.Context) ([]core.Trip, error)
	Create(ctx context.Context, t *core.Trip) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo core.TripRepository
	now  func() time.Time
}

// NewService crea el service de trips.
func NewService(repo core.TripRepository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]core.Trip, error) {
	log := logger.From(ctx).With(logger.Component("trips"), logger.Op("List"))

	items, err := s.repo.ListTrips(ctx)
	if err != nil {
		log.Error("listado de trips falló", logger.Err(err))
		return nil, err
	}
	log.Debug("trips listados", logger.Count(len(items)))
	return items, nil
}

func (s *service) Create(ctx context.Context, t *core.Trip) error {
	log := logger.From(ctx).With(logger.Component("trips"), logger.Op("Create"))

	t.CreatedAt = s.now().UTC()
	if err := s.repo.CreateTrip(ctx, t); err != nil {
		log.Error("alta de trip falló", logger.Err(err))
		return err
	}
	log.Info("trip creado", logger.DocID(t.ID))
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx).With(logger.Component("trips"), logger.Op("Delete"))

	if err := s.repo.DeleteTrip(ctx, id); err != nil {
		switch err {
		case core.ErrInvalidID, core.ErrNotFound:
			log.Debug("delete rechazado", logger.DocID(id), logger.Err(err))
		default:
			log.Error("delete de trip falló", logger.DocID(id), logger.Err(err))
		}
		return err
	}
	log.Info("trip eliminado", logger.DocID(id))
	return nil
}

// Package investors implementa la lógica de /investors sobre el
// repositorio de persistencia.
package investors

import (
	"context"
	"time"

	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

// Service define las operaciones disponibles sobre investors.
type Service interface {
	List(ctx context.Context) ([]core.Investor, error)
	Create(ctx context.Context, inv *core.Investor) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo core.InvestorRepository
	now  func() time.Time
}

// NewService crea el service de investors.
func NewService(repo core.InvestorRepository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]core.Investor, error) {
	log := logger.From(ctx).With(logger.Component("investors"), logger.Op("List"))

	items, err := s.repo.ListInvestors(ctx)
	if err != nil {
		log.Error("listado de investors falló", logger.Err(err))
		return nil, err
	}
	log.Debug("investors listados", logger.Count(len(items)))
	return items, nil
}

func (s *service) Create(ctx context.Context, inv *core.Investor) error {
	log := logger.From(ctx).With(logger.Component("investors"), logger.Op("Create"))

	inv.CreatedAt = s.now().UTC()
	if err := s.repo.CreateInvestor(ctx, inv); err != nil {
		log.Error("alta de investor falló", logger.Err(err))
		return err
	}
	log.Info("investor creado", logger.DocID(inv.ID))
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.From(ctx).With(logger.Component("investors"), logger.Op("Delete"))

	if err := s.repo.DeleteInvestor(ctx, id); err != nil {
		// ErrInvalidID y ErrNotFound son parte del contrato; solo los
		// fallos reales del storage merecen nivel error.
		switch err {
		case core.ErrInvalidID, core.ErrNotFound:
			log.Debug("delete rechazado", logger.DocID(id), logger.Err(err))
		default:
			log.Error("delete de investor falló", logger.DocID(id), logger.Err(err))
		}
		return err
	}
	log.Info("investor eliminado", logger.DocID(id))
	return nil
}

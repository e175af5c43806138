package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carparts/carparts-api/internal/metrics"
	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/core/ports"
)

type partService struct {
	parts ports.PartRepository
	log   zerolog.Logger
}

// NewPartService returns a PartService implementation.
func NewPartService(parts ports.PartRepository, log zerolog.Logger) ports.PartService {
	return &partService{parts: parts, log: log}
}

func (s *partService) ListParts(ctx context.Context) ([]domain.Document, error) {
	parts, err := s.parts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return parts, nil
}

// GetPart returns domain.ErrNotFound when the id matches nothing.
func (s *partService) GetPart(ctx context.Context, id string) (domain.Document, error) {
	return s.parts.FindByID(ctx, id)
}

func (s *partService) CreatePart(ctx context.Context, part domain.Document) (*domain.InsertResult, error) {
	res, err := s.parts.Insert(ctx, part.Without(domain.FieldID))
	if err != nil {
		return nil, fmt.Errorf("create part: %w", err)
	}
	metrics.PartsCreatedTotal.Inc()
	s.log.Info().Str("part_id", res.InsertedID).Msg("part created")
	return res, nil
}

func (s *partService) DeletePart(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.parts.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete part: %w", err)
	}
	if res.DeletedCount > 0 {
		metrics.PartsDeletedTotal.Inc()
		s.log.Info().Str("part_id", id).Msg("part deleted")
	}
	return res, nil
}

// UpdateQuantity stores deliveredQuantity as the part quantity, creating the
// part when the id does not exist.
func (s *partService) UpdateQuantity(ctx context.Context, id string, deliveredQuantity any) (*domain.UpdateResult, error) {
	res, err := s.parts.SetQuantity(ctx, id, deliveredQuantity)
	if err != nil {
		return nil, fmt.Errorf("update part quantity: %w", err)
	}

	outcome := "updated"
	if res.UpsertedCount > 0 {
		outcome = "upserted"
	}
	metrics.StockUpdatesTotal.WithLabelValues(outcome).Inc()
	s.log.Debug().Str("part_id", id).Str("outcome", outcome).Msg("part quantity set")
	return res, nil
}

package recents

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
)

// Service implements the recent-search use cases.
type Service struct {
	repo   Repository
	limit  int
	logger *zap.Logger
}

// NewService creates a Service listing at most limit searches.
func NewService(repo Repository, limit int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, limit: limit, logger: logger}
}

// Record stores o under label.
func (s *Service) Record(ctx context.Context, label string, o *directions.RouteOptions) (*Search, error) {
	search, err := NewSearch(label, o)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, search); err != nil {
		s.logger.Error("failed to save recent search", zap.Error(err))
		return nil, err
	}
	s.logger.Info("recent search saved",
		zap.String("id", search.ID.String()),
		zap.String("profile", string(o.ProfileIdentifier())),
		zap.Int("waypoints", len(o.Waypoints())),
	)
	return search, nil
}

// List returns the newest searches up to the configured limit.
func (s *Service) List(ctx context.Context) ([]*Search, error) {
	return s.repo.List(ctx, s.limit)
}

// Delete removes a search.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("recent search deleted", zap.String("id", id.String()))
	return nil
}

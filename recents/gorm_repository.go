package recents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/theoremus-urban-solutions/transit-directions/archive"
)

// SearchModel is the GORM model for the recent_searches table.
type SearchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label     string    `gorm:"type:varchar(100);not null"`
	Options   []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();index"`
}

func (SearchModel) TableName() string { return "recent_searches" }

// GormRepository implements Repository using GORM.
type GormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormRepository(db *gorm.DB, logger *zap.Logger) *GormRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormRepository{db: db, logger: logger}
}

// Migrate creates or updates the recent_searches table.
func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&SearchModel{})
}

func (r *GormRepository) Save(ctx context.Context, s *Search) error {
	model, err := toSearchModel(s)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *GormRepository) List(ctx context.Context, limit int) ([]*Search, error) {
	if limit <= 0 {
		limit = -1
	}
	var models []SearchModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}
	searches := make([]*Search, 0, len(models))
	for i := range models {
		s, err := toSearchDomain(&models[i])
		if err != nil {
			r.logger.Warn("skipping unreadable recent search",
				zap.String("id", models[i].ID.String()),
				zap.Error(err),
			)
			continue
		}
		searches = append(searches, s)
	}
	return searches, nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SearchModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Conversions ---

func toSearchModel(s *Search) (*SearchModel, error) {
	data, err := archive.Marshal(s.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to archive search %s: %w", s.ID, err)
	}
	return &SearchModel{
		ID:        s.ID,
		Label:     s.Label,
		Options:   data,
		CreatedAt: s.CreatedAt,
	}, nil
}

func toSearchDomain(m *SearchModel) (*Search, error) {
	o, err := archive.Unmarshal(m.Options)
	if err != nil {
		return nil, err
	}
	return &Search{
		ID:        m.ID,
		Label:     m.Label,
		Options:   o,
		CreatedAt: m.CreatedAt,
	}, nil
}

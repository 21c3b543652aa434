package recents

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
)

// MaxLabelLength is the longest label a search may carry, in characters.
const MaxLabelLength = 100

var (
	// ErrNotFound is returned when a search does not exist.
	ErrNotFound = errors.New("recents: search not found")
	// ErrInvalidLabel is returned for empty or overlong labels.
	ErrInvalidLabel = errors.New("recents: label must be 1-100 characters")
)

// Search is a stored directions request.
type Search struct {
	ID        uuid.UUID
	Label     string
	Options   *directions.RouteOptions
	CreatedAt time.Time
}

// NewSearch returns a search with a fresh ID. The options are copied.
func NewSearch(label string, o *directions.RouteOptions) (*Search, error) {
	label = strings.TrimSpace(label)
	if label == "" || utf8.RuneCountInString(label) > MaxLabelLength {
		return nil, ErrInvalidLabel
	}
	return &Search{
		ID:        uuid.New(),
		Label:     label,
		Options:   o.Copy(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Repository defines persistence operations for recent searches.
type Repository interface {
	Save(ctx context.Context, s *Search) error
	// List returns at most limit searches, newest first. A limit of zero
	// or less lists everything.
	List(ctx context.Context, limit int) ([]*Search, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package handlers

import (
	"context"

	"habitquest/internal/models"
)

// UserRepository captures the persistence operations required by handlers.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateProgress(ctx context.Context, id string, user *models.User) (*models.User, error)
}

// ActivityStore captures the key-value operations the activity endpoints
// require. The account handlers never touch it.
type ActivityStore interface {
	Get(ctx context.Context, userID, key string) (string, error)
	Set(ctx context.Context, userID, key, value string) error
	AppendFeed(ctx context.Context, userID string, entry models.FeedEntry) error
	Feed(ctx context.Context, userID string, limit int64) ([]models.FeedEntry, error)
}

// Pinger reports backing-store reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

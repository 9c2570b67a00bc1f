// Package store defines the persistence interface for the ShelfTalk server.
package store

import (
	"context"

	"github.com/shelftalk/shelftalk-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// Tags
	GetTagByName(ctx context.Context, name string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)

	// Recommendations
	CreateRecommendation(ctx context.Context, rec *domain.Recommendation, tags []domain.ResolvedTag) error
	GetRecommendation(ctx context.Context, id string) (*domain.Recommendation, error)
	ListRecommendationsByUser(ctx context.Context, userID string) ([]*domain.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id string) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shelftalk/shelftalk-server/internal/domain"
	domainerrors "github.com/shelftalk/shelftalk-server/internal/errors"
	"github.com/shelftalk/shelftalk-server/internal/id"
	"github.com/shelftalk/shelftalk-server/internal/store"
	"github.com/shelftalk/shelftalk-server/internal/validation"
)

// RecommendationService handles creating, reading, and deleting recommendations.
type RecommendationService struct {
	store     store.Store
	resolver  *TagResolver
	validator *validation.Validator
	logger    *slog.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	store store.Store,
	resolver *TagResolver,
	validator *validation.Validator,
	logger *slog.Logger,
) *RecommendationService {
	return &RecommendationService{
		store:     store,
		resolver:  resolver,
		validator: validator,
		logger:    logger,
	}
}

// CreateRecommendationRequest contains the data for a new recommendation.
type CreateRecommendationRequest struct {
	TypeOfFiction    string   `json:"type_of_fiction" validate:"required,min=4,max=255"`
	Title            string   `json:"title" validate:"required,max=255"`
	ShortDescription string   `json:"short_description" validate:"required"`
	Opinion          string   `json:"opinion" validate:"required"`
	Tags             []string `json:"tags" validate:"required,min=1"`
}

// Create resolves the request's tags and persists the recommendation, any new
// tags, and the join rows in one transaction. Published is set to now and
// Updated stays unset.
func (s *RecommendationService) Create(ctx context.Context, userID string, req CreateRecommendationRequest) (*domain.Recommendation, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	recID, err := id.Generate("rec")
	if err != nil {
		return nil, fmt.Errorf("generate recommendation ID: %w", err)
	}

	rec := &domain.Recommendation{
		ID:               recID,
		TypeOfFiction:    req.TypeOfFiction,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Opinion:          req.Opinion,
		Published:        time.Now(),
		UserID:           userID,
	}

	if err := s.store.CreateRecommendation(ctx, rec, resolved); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.Duplicate("Not unique type of fiction")
		}
		return nil, fmt.Errorf("create recommendation: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Recommendation created",
			"recommendation_id", recID,
			"user_id", userID,
			"tags", len(rec.Tags),
		)
	}

	return rec, nil
}

// Get returns a recommendation by ID with its tags. Reads are public.
func (s *RecommendationService) Get(ctx context.Context, recID string) (*domain.Recommendation, error) {
	rec, err := s.store.GetRecommendation(ctx, recID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("recommendation not found")
		}
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	return rec, nil
}

// ListByUser returns all recommendations owned by the given user, oldest first.
func (s *RecommendationService) ListByUser(ctx context.Context, userID string) ([]*domain.Recommendation, error) {
	recs, err := s.store.ListRecommendationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return recs, nil
}

// Delete removes a recommendation. Only the owner may delete; a non-owner
// gets Forbidden, distinct from the NotFound of a missing ID.
func (s *RecommendationService) Delete(ctx context.Context, userID, recID string) error {
	rec, err := s.store.GetRecommendation(ctx, recID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("recommendation not found")
		}
		return fmt.Errorf("get recommendation: %w", err)
	}

	if !rec.IsOwnedBy(userID) {
		return domainerrors.Forbidden("you do not own this recommendation")
	}

	if err := s.store.DeleteRecommendation(ctx, recID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("recommendation not found")
		}
		return fmt.Errorf("delete recommendation: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Recommendation deleted",
			"recommendation_id", recID,
			"user_id", userID,
		)
	}
	return nil
}

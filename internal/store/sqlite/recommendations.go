package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shelftalk/shelftalk-server/internal/domain"
	"github.com/shelftalk/shelftalk-server/internal/id"
	"github.com/shelftalk/shelftalk-server/internal/store"
)

// recommendationColumns is the ordered list of columns selected in
// recommendation queries. Must match the scan order in scanRecommendation.
const recommendationColumns = `id, type_of_fiction, title, short_description,
	opinion, published, updated, user_id`

// scanRecommendation scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.Recommendation. Tags are left nil; the caller loads them.
func scanRecommendation(scanner interface{ Scan(dest ...any) error }) (*domain.Recommendation, error) {
	var r domain.Recommendation

	var (
		published string
		updated   sql.NullString
	)

	err := scanner.Scan(
		&r.ID,
		&r.TypeOfFiction,
		&r.Title,
		&r.ShortDescription,
		&r.Opinion,
		&published,
		&updated,
		&r.UserID,
	)
	if err != nil {
		return nil, err
	}

	r.Published, err = parseTime(published)
	if err != nil {
		return nil, err
	}
	r.Updated, err = parseNullableTime(updated)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// CreateRecommendation persists a recommendation, any tags resolved as new,
// and the join rows in a single transaction. On success rec.Tags is populated
// with the final tag set in input order.
// Returns store.ErrAlreadyExists if type_of_fiction is already taken.
func (s *Store) CreateRecommendation(ctx context.Context, rec *domain.Recommendation, tags []domain.ResolvedTag) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recommendations (
			id, type_of_fiction, title, short_description, opinion,
			published, updated, user_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.TypeOfFiction,
		rec.Title,
		rec.ShortDescription,
		rec.Opinion,
		formatTime(rec.Published),
		nullTimeString(rec.Updated),
		rec.UserID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	// Materialize new tags and collect the final tag rows in input order.
	final := make([]*domain.Tag, 0, len(tags))
	linked := make(map[string]bool, len(tags))
	for _, rt := range tags {
		t, err := resolveTagTx(ctx, tx, rt)
		if err != nil {
			return err
		}
		final = append(final, t)

		// Repeated input strings resolve to the same tag; link once.
		if linked[t.ID] {
			continue
		}
		linked[t.ID] = true

		_, err = tx.ExecContext(ctx, `
			INSERT INTO recommendation_tags (recommendation_id, tag_id)
			VALUES (?, ?)`,
			rec.ID,
			t.ID,
		)
		if err != nil {
			return fmt.Errorf("insert recommendation_tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	rec.Tags = final
	return nil
}

// resolveTagTx turns a resolved tag into a concrete tag row within the
// transaction, inserting new names as needed. A unique-constraint failure on
// insert means another transaction created the name first; reuse that row.
func resolveTagTx(ctx context.Context, tx *sql.Tx, rt domain.ResolvedTag) (*domain.Tag, error) {
	if rt.Existing {
		return &domain.Tag{ID: rt.TagID, Name: rt.Name}, nil
	}

	tagID, err := id.Generate("tag")
	if err != nil {
		return nil, fmt.Errorf("generate tag id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tags (id, name) VALUES (?, ?)`, tagID, rt.Name)
	if err == nil {
		return &domain.Tag{ID: tagID, Name: rt.Name}, nil
	}
	if !strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil, fmt.Errorf("insert tag: %w", err)
	}

	row := tx.QueryRowContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE name = ?`, rt.Name)
	t, err := scanTag(row)
	if err != nil {
		return nil, fmt.Errorf("reload tag after race: %w", err)
	}
	return t, nil
}

// GetRecommendation retrieves a recommendation by ID with its tags loaded.
// Returns store.ErrNotFound if the recommendation does not exist.
func (s *Store) GetRecommendation(ctx context.Context, recID string) (*domain.Recommendation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations WHERE id = ?`, recID)

	r, err := scanRecommendation(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	r.Tags, err = s.getRecommendationTags(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRecommendationsByUser returns a user's recommendations ordered by
// publication time, with tags loaded.
func (s *Store) ListRecommendationsByUser(ctx context.Context, userID string) ([]*domain.Recommendation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations
		WHERE user_id = ? ORDER BY published ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*domain.Recommendation
	for rows.Next() {
		r, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, r := range recs {
		r.Tags, err = s.getRecommendationTags(ctx, r.ID)
		if err != nil {
			return nil, err
		}
	}

	if recs == nil {
		recs = []*domain.Recommendation{}
	}

	return recs, nil
}

// DeleteRecommendation removes a recommendation and its tag links. Tag rows
// are shared across recommendations and stay behind.
// Returns store.ErrNotFound if the recommendation does not exist.
func (s *Store) DeleteRecommendation(ctx context.Context, recID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM recommendation_tags WHERE recommendation_id = ?`, recID); err != nil {
		return fmt.Errorf("delete recommendation_tags: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM recommendations WHERE id = ?`, recID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}

	return tx.Commit()
}

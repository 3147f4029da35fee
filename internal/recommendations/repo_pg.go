package recommendations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"healthplan-backend/internal/plan"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var recommendationColumns = []string{"id", "user_id", "input", "suggestions", "message", "source", "created_at"}

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a recommendation.
func (r *PGRepo) Create(ctx context.Context, rec StoredRecommendation) error {
	input, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	suggestions := rec.Suggestions
	if suggestions == nil {
		suggestions = []plan.Suggestion{}
	}
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	query, args, err := psql.Insert("recommendations").
		Columns(recommendationColumns...).
		Values(rec.ID, nullString(rec.UserID), input, suggestionsJSON, rec.Message, string(rec.Source), rec.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, args...)
	return err
}

// GetByID returns a recommendation by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (StoredRecommendation, error) {
	query, args, err := psql.Select(recommendationColumns...).
		From("recommendations").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return StoredRecommendation{}, err
	}
	rec, err := scanRecommendation(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredRecommendation{}, ErrNotFound
		}
		return StoredRecommendation{}, err
	}
	return rec, nil
}

// List returns recommendations ordered newest-first.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]StoredRecommendation, error) {
	filter = normalizeFilter(filter)
	builder := psql.Select(recommendationColumns...).
		From("recommendations").
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredRecommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(row rowScanner) (StoredRecommendation, error) {
	var (
		rec         StoredRecommendation
		userID      sql.NullString
		input       []byte
		suggestions []byte
		source      string
	)
	if err := row.Scan(&rec.ID, &userID, &input, &suggestions, &rec.Message, &source, &rec.CreatedAt); err != nil {
		return StoredRecommendation{}, err
	}
	rec.UserID = userID.String
	rec.Source = Source(source)
	if len(input) > 0 {
		if err := json.Unmarshal(input, &rec.Input); err != nil {
			return StoredRecommendation{}, fmt.Errorf("decode input: %w", err)
		}
	}
	if len(suggestions) > 0 {
		if err := json.Unmarshal(suggestions, &rec.Suggestions); err != nil {
			return StoredRecommendation{}, fmt.Errorf("decode suggestions: %w", err)
		}
	}
	return rec, nil
}

// PGFeedbackRepo implements FeedbackRepo using Postgres.
type PGFeedbackRepo struct {
	DB *sql.DB
}

// Create inserts a feedback row.
func (r *PGFeedbackRepo) Create(ctx context.Context, fb Feedback) error {
	query, args, err := psql.Insert("recommendation_feedback").
		Columns("id", "recommendation_id", "user_id", "liked", "created_at").
		Values(fb.ID, fb.RecommendationID, nullString(fb.UserID), fb.Liked, fb.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, args...)
	return err
}

// Summary counts likes and dislikes for a recommendation.
func (r *PGFeedbackRepo) Summary(ctx context.Context, recommendationID string) (FeedbackSummary, error) {
	query, args, err := psql.Select(
		"COALESCE(SUM(CASE WHEN liked THEN 1 ELSE 0 END), 0)",
		"COALESCE(SUM(CASE WHEN liked THEN 0 ELSE 1 END), 0)",
	).
		From("recommendation_feedback").
		Where(sq.Eq{"recommendation_id": recommendationID}).
		ToSql()
	if err != nil {
		return FeedbackSummary{}, err
	}
	var out FeedbackSummary
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&out.Likes, &out.Dislikes); err != nil {
		return FeedbackSummary{}, err
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var (
	_ Repo         = (*PGRepo)(nil)
	_ FeedbackRepo = (*PGFeedbackRepo)(nil)
)

package recommendations

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"healthplan-backend/internal/plan"
)

func TestPGRepoCreateStoresJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	age := 70
	rec := StoredRecommendation{
		ID:          "rec-1",
		Input:       InputRecord{Age: &age, Symptoms: []string{"fatigue"}, Goals: []string{}},
		Suggestions: []plan.Suggestion{{Title: "Sleep routine", Detail: "Fixed times"}},
		Message:     "Based on...",
		Source:      SourceRules,
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO recommendations").
		WithArgs(
			rec.ID,
			nil, // anonymous user
			[]byte(`{"age":70,"lifestyle":"","symptoms":["fatigue"],"goals":[]}`),
			[]byte(`[{"title":"Sleep routine","detail":"Fixed times"}]`),
			rec.Message,
			"rules",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM recommendations WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListScopesByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(recommendationColumns).
		AddRow("rec-2", "user-1", []byte(`{"age":null,"lifestyle":"desk","symptoms":[],"goals":[]}`),
			[]byte(`[{"title":"Gentle daily movement","detail":"Walk"}]`), "msg", "llm", created)

	mock.ExpectQuery("SELECT (.+) FROM recommendations WHERE user_id = \\$1 ORDER BY created_at DESC LIMIT 100 OFFSET 5").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background(), ListFilter{UserID: "user-1", Limit: 500, Offset: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	rec := got[0]
	if rec.UserID != "user-1" || rec.Source != SourceLLM || rec.Input.Lifestyle != "desk" || rec.Input.Age != nil {
		t.Fatalf("unexpected record %+v", rec)
	}
	if len(rec.Suggestions) != 1 || rec.Suggestions[0].Title != "Gentle daily movement" {
		t.Fatalf("unexpected suggestions %+v", rec.Suggestions)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGFeedbackRepoSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM recommendation_feedback WHERE recommendation_id = \\$1").
		WithArgs("rec-1").
		WillReturnRows(sqlmock.NewRows([]string{"likes", "dislikes"}).AddRow(3, 1))

	repo := &PGFeedbackRepo{DB: db}
	summary, err := repo.Summary(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Likes != 3 || summary.Dislikes != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestPGFeedbackRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO recommendation_feedback").
		WithArgs("fb-1", "rec-1", "user-1", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGFeedbackRepo{DB: db}
	err = repo.Create(context.Background(), Feedback{
		ID:               "fb-1",
		RecommendationID: "rec-1",
		UserID:           "user-1",
		Liked:            true,
		CreatedAt:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

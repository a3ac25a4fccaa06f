package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
)

// SQLiteRecommendationRepo persists the Rights recommendations of a case.
// Replace issues several statements; run it inside a UnitOfWork.
type SQLiteRecommendationRepo struct {
	db db.DBTX
}

func NewSQLiteRecommendationRepo(conn db.DBTX) *SQLiteRecommendationRepo {
	return &SQLiteRecommendationRepo{db: conn}
}

func (r *SQLiteRecommendationRepo) Replace(ctx context.Context, caseID string, recs []domain.Recommendation) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recommendations WHERE case_id = ?`, caseID); err != nil {
		return fmt.Errorf("clearing recommendations: %w", err)
	}

	now := formatTime(time.Now())
	for i, rec := range recs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO recommendations (case_id, position, rec_id, title, reason, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			caseID, i, rec.ID, rec.Title, rec.Reason, now)
		if err != nil {
			return fmt.Errorf("inserting recommendation %s: %w", rec.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRecommendationRepo) ListByCase(ctx context.Context, caseID string) ([]domain.Recommendation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rec_id, title, reason FROM recommendations WHERE case_id = ? ORDER BY position`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	defer rows.Close()

	recs := []domain.Recommendation{}
	for rows.Next() {
		var rec domain.Recommendation
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Reason); err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendations: %w", err)
	}
	return recs, nil
}

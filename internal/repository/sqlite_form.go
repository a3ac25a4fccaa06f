package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
)

// SQLiteFormRepo stores answer sets as JSON documents.
type SQLiteFormRepo struct {
	db db.DBTX
}

func NewSQLiteFormRepo(conn db.DBTX) *SQLiteFormRepo {
	return &SQLiteFormRepo{db: conn}
}

func (r *SQLiteFormRepo) Get(ctx context.Context, caseID string, d domain.FormDomain) (*domain.FormRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT case_id, domain, answers, completed, updated_at FROM form_records WHERE case_id = ? AND domain = ?`,
		caseID, string(d))
	rec, err := scanForm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s form of case %s: %w", d, caseID, ErrNotFound)
	}
	return rec, err
}

func (r *SQLiteFormRepo) Save(ctx context.Context, rec *domain.FormRecord) error {
	answers := rec.Answers
	if answers == nil {
		answers = domain.AnswerSet{}
	}
	doc, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encoding %s answers: %w", rec.Domain, err)
	}

	query := `INSERT INTO form_records (case_id, domain, answers, completed, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(case_id, domain) DO UPDATE SET
			answers = excluded.answers,
			completed = excluded.completed,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		rec.CaseID,
		string(rec.Domain),
		string(doc),
		boolToInt(rec.Completed),
		formatTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving %s form: %w", rec.Domain, err)
	}
	return nil
}

func (r *SQLiteFormRepo) ListByCase(ctx context.Context, caseID string) ([]*domain.FormRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT case_id, domain, answers, completed, updated_at FROM form_records WHERE case_id = ? ORDER BY domain`,
		caseID)
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}
	defer rows.Close()

	var recs []*domain.FormRecord
	for rows.Next() {
		rec, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forms: %w", err)
	}
	return recs, nil
}

func scanForm(s scanner) (*domain.FormRecord, error) {
	var rec domain.FormRecord
	var d, doc, updatedAt string
	var completed int

	if err := s.Scan(&rec.CaseID, &d, &doc, &completed, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning form: %w", err)
	}

	rec.Domain = domain.FormDomain(d)
	rec.Completed = intToBool(completed)
	rec.Answers = domain.AnswerSet{}
	if err := json.Unmarshal([]byte(doc), &rec.Answers); err != nil {
		return nil, fmt.Errorf("decoding %s answers: %w", d, err)
	}
	// JSON null entries decode to None; drop them so the set never stores None.
	for k, v := range rec.Answers {
		if v.IsNone() {
			delete(rec.Answers, k)
		}
	}

	var err error
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}

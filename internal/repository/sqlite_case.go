package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
)

// SQLiteCaseRepo implements CaseRepo using a SQLite database.
type SQLiteCaseRepo struct {
	db db.DBTX
}

func NewSQLiteCaseRepo(conn db.DBTX) *SQLiteCaseRepo {
	return &SQLiteCaseRepo{db: conn}
}

const caseColumns = `id, first_name, last_name, id_number, date_of_birth, phone, email, address,
	case_summary, main_concerns, goals, status, created_at, updated_at`

func (r *SQLiteCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	query := `INSERT INTO cases (` + caseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.FirstName,
		c.LastName,
		c.IDNumber,
		nullableTimeToString(c.DateOfBirth, dateLayout),
		c.Phone,
		c.Email,
		c.Address,
		c.CaseSummary,
		c.MainConcerns,
		c.Goals,
		string(c.Status),
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting case: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = ?`, id)
	c, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	return c, err
}

func (r *SQLiteCaseRepo) List(ctx context.Context, filter CaseFilter) ([]*domain.Case, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	} else if !filter.IncludeArchived {
		where = append(where, "status != 'archived'")
	}

	query := `SELECT ` + caseColumns + ` FROM cases`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	defer rows.Close()

	var cases []*domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cases: %w", err)
	}
	return cases, nil
}

func (r *SQLiteCaseRepo) Update(ctx context.Context, c *domain.Case) error {
	query := `UPDATE cases SET first_name = ?, last_name = ?, id_number = ?, date_of_birth = ?, phone = ?,
		email = ?, address = ?, case_summary = ?, main_concerns = ?, goals = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.FirstName,
		c.LastName,
		c.IDNumber,
		nullableTimeToString(c.DateOfBirth, dateLayout),
		c.Phone,
		c.Email,
		c.Address,
		c.CaseSummary,
		c.MainConcerns,
		c.Goals,
		string(c.Status),
		formatTime(c.UpdatedAt),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating case: %w", err)
	}
	return requireAffected(res, "case", c.ID)
}

func (r *SQLiteCaseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting case: %w", err)
	}
	return requireAffected(res, "case", id)
}

func scanCase(s scanner) (*domain.Case, error) {
	var c domain.Case
	var dob sql.NullString
	var status, createdAt, updatedAt string

	err := s.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.IDNumber, &dob,
		&c.Phone, &c.Email, &c.Address,
		&c.CaseSummary, &c.MainConcerns, &c.Goals,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning case: %w", err)
	}

	c.Status = domain.CaseStatus(status)
	c.DateOfBirth = parseNullableTime(dob, dateLayout)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}

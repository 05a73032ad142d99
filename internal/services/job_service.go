package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobboard/internal/apperrors"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/sqlbuilder"
)

type JobService struct {
	DB *sql.DB
}

func NewJobService(db *sql.DB) *JobService {
	return &JobService{DB: db}
}

const jobSelect = `SELECT id, title, salary, equity, company_handle FROM jobs`

func scanJob(s interface{ Scan(...any) error }) (*models.Job, error) {
	var j models.Job
	if err := s.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *JobService) Create(ctx context.Context, req dtos.JobCreationRequest) (*models.Job, error) {
	var handle string
	err := s.DB.QueryRowContext(ctx, `SELECT handle FROM companies WHERE handle = $1`, req.CompanyHandle).Scan(&handle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("no company: %s", req.CompanyHandle)
	}
	if err != nil {
		return nil, err
	}

	row := s.DB.QueryRowContext(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, salary, equity, company_handle`,
		req.Title, req.Salary, req.Equity, req.CompanyHandle)
	return scanJob(row)
}

func (s *JobService) List(ctx context.Context, req dtos.JobSearchRequest) ([]models.Job, error) {
	clause, err := req.Filter().Build()
	if err != nil {
		return nil, err
	}

	query := jobSelect + sqlbuilder.WhereSQL(clause) + ` ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, clause.Values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := emptyAsNotFound(len(jobs), "jobs"); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get returns one job with a summary of its company attached.
func (s *JobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	job, err := scanJob(s.DB.QueryRowContext(ctx, jobSelect+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("no job: %d", id)
	}
	if err != nil {
		return nil, err
	}

	company, err := scanCompany(s.DB.QueryRowContext(ctx,
		companySelect+` WHERE handle = $1`, job.CompanyHandle))
	if err != nil {
		return nil, err
	}
	company.Jobs = nil
	job.Company = company
	return job, nil
}

// Update applies a partial update. Job field names already match their
// columns, so no translation map is needed; id and company_handle are
// not patchable because the DTO never emits them.
func (s *JobService) Update(ctx context.Context, id int64, req dtos.JobUpdateRequest) (*models.Job, error) {
	clause, err := sqlbuilder.BuildPartialUpdate(req.Payload(), nil)
	if err != nil {
		return nil, err
	}

	args := append(clause.Values, id)
	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d
		 RETURNING id, title, salary, equity, company_handle`,
		clause.Text, len(args))

	job, err := scanJob(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("no job: %d", id)
	}
	return job, err
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFoundf("no job: %d", id)
	}
	return nil
}

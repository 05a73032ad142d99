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

type CompanyService struct {
	DB *sql.DB
}

func NewCompanyService(db *sql.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// companyCols maps the JSON field names of the PATCH body to column
// names; fields absent here pass through verbatim.
var companyCols = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

const companySelect = `SELECT handle, name, description, num_employees, logo_url FROM companies`

func scanCompany(s interface{ Scan(...any) error }) (*models.Company, error) {
	var c models.Company
	var desc, logo sql.NullString
	if err := s.Scan(&c.Handle, &c.Name, &desc, &c.NumEmployees, &logo); err != nil {
		return nil, err
	}
	c.Description = desc.String
	c.LogoURL = logo.String
	return &c, nil
}

func (s *CompanyService) Create(ctx context.Context, req dtos.CompanyCreationRequest) (*models.Company, error) {
	var existing string
	err := s.DB.QueryRowContext(ctx, `SELECT handle FROM companies WHERE handle = $1`, req.Handle).Scan(&existing)
	if err == nil {
		return nil, apperrors.Validationf("duplicate company: %s", req.Handle)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	row := s.DB.QueryRowContext(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING handle, name, description, num_employees, logo_url`,
		req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL)
	return scanCompany(row)
}

// List runs a filtered company search. Zero matches are an error, per
// the emptyAsNotFound policy.
func (s *CompanyService) List(ctx context.Context, req dtos.CompanySearchRequest) ([]models.Company, error) {
	clause, err := req.Filter().Build()
	if err != nil {
		return nil, err
	}

	query := companySelect + sqlbuilder.WhereSQL(clause) + ` ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query, clause.Values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := emptyAsNotFound(len(companies), "companies"); err != nil {
		return nil, err
	}
	return companies, nil
}

// Get returns one company with its jobs attached.
func (s *CompanyService) Get(ctx context.Context, handle string) (*models.Company, error) {
	row := s.DB.QueryRowContext(ctx, companySelect+` WHERE handle = $1`, handle)
	company, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("no company: %s", handle)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, title, salary, equity FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity); err != nil {
			return nil, err
		}
		j.CompanyHandle = handle
		company.Jobs = append(company.Jobs, j)
	}
	return company, rows.Err()
}

// Update applies a partial update built from the supplied fields only.
func (s *CompanyService) Update(ctx context.Context, handle string, req dtos.CompanyUpdateRequest) (*models.Company, error) {
	clause, err := sqlbuilder.BuildPartialUpdate(req.Payload(), companyCols)
	if err != nil {
		return nil, err
	}

	args := append(clause.Values, handle)
	query := fmt.Sprintf(
		`UPDATE companies SET %s WHERE handle = $%d
		 RETURNING handle, name, description, num_employees, logo_url`,
		clause.Text, len(args))

	company, err := scanCompany(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("no company: %s", handle)
	}
	return company, err
}

func (s *CompanyService) Delete(ctx context.Context, handle string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFoundf("no company: %s", handle)
	}
	return nil
}

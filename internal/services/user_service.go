package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/apperrors"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/sqlbuilder"
)

type UserService struct {
	DB *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{DB: db}
}

var userCols = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

const userSelect = `SELECT username, password, first_name, last_name, email, is_admin FROM users`

func scanUser(s interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	if err := s.Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin); err != nil {
		return nil, err
	}
	return &u, nil
}

// bcryptCost reads BCRYPT_COST, defaulting to 12. Tests set it lower to
// keep hashing fast.
func bcryptCost() int {
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			return cost
		}
	}
	return 12
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost())
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// create hashes the password and inserts the row; u.Password arrives in
// plaintext and never leaves this function that way.
func (s *UserService) create(ctx context.Context, u models.User) (*models.User, error) {
	var existing string
	err := s.DB.QueryRowContext(ctx, `SELECT username FROM users WHERE username = $1`, u.Username).Scan(&existing)
	if err == nil {
		return nil, apperrors.Validationf("duplicate username: %s", u.Username)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	u.Password, err = hashPassword(u.Password)
	if err != nil {
		return nil, err
	}

	row := s.DB.QueryRowContext(ctx,
		`INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING username, password, first_name, last_name, email, is_admin`,
		u.Username, u.Password, u.FirstName, u.LastName, u.Email, u.IsAdmin)
	return scanUser(row)
}

// Register creates a regular (never admin) account from public
// self-registration.
func (s *UserService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error) {
	return s.create(ctx, models.User{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
}

// Create is the admin path and may grant admin.
func (s *UserService) Create(ctx context.Context, req dtos.UserCreationRequest) (*models.User, error) {
	return s.create(ctx, models.User{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
}

// Authenticate checks credentials. Unknown user and wrong password are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := scanUser(s.DB.QueryRowContext(ctx, userSelect+` WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Unauthorizedf("invalid username/password")
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.Unauthorizedf("invalid username/password")
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.DB.QueryContext(ctx, userSelect+` ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Get returns one user with the ids of jobs they applied to.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(s.DB.QueryRowContext(ctx, userSelect+` WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("no user: %s", username)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		user.Jobs = append(user.Jobs, id)
	}
	return user, rows.Err()
}

// Update applies a partial update. A supplied password is hashed before
// the SET clause is built, so only the hash ever reaches the database.
func (s *UserService) Update(ctx context.Context, username string, req dtos.UserUpdateRequest) (*models.User, error) {
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		req.Password = &hashed
	}

	clause, err := sqlbuilder.BuildPartialUpdate(req.Payload(), userCols)
	if err != nil {
		return nil, err
	}

	args := append(clause.Values, username)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE username = $%d
		 RETURNING username, password, first_name, last_name, email, is_admin`,
		clause.Text, len(args))

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("no user: %s", username)
	}
	return user, err
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFoundf("no user: %s", username)
	}
	return nil
}

// Apply records a job application for a user.
func (s *UserService) Apply(ctx context.Context, username string, jobID int64) error {
	var id int64
	err := s.DB.QueryRowContext(ctx, `SELECT id FROM jobs WHERE id = $1`, jobID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFoundf("no job: %d", jobID)
	}
	if err != nil {
		return err
	}

	var existing int64
	err = s.DB.QueryRowContext(ctx,
		`SELECT job_id FROM applications WHERE username = $1 AND job_id = $2`, username, jobID).Scan(&existing)
	if err == nil {
		return apperrors.Validationf("duplicate application: job %d", jobID)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO applications (username, job_id) VALUES ($1, $2)`, username, jobID)
	return err
}

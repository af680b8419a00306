package repo

import (
	"context"
	"database/sql"
)

type Profile struct {
	ID           int    `json:"id"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfile(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, organization, description string) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfile(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(organization, ''), COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Organization, &p.Description)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

// UpdateProfile rewrites the editable profile fields. An empty login keeps
// the stored one.
func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, organization, description string) error {
	query := "UPDATE users SET login=COALESCE(NULLIF($1, ''), login), organization=$2, description=$3 WHERE id=$4"
	_, err := r.db.ExecContext(ctx, query, login, organization, description, id)
	return err
}

package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

const uniqueViolation = "23505"

const userColumns = `id, display_name, email, designation, years_of_experience, COALESCE(avatar, ''), password_hash, created_at, updated_at`

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ repository.UserRepository = (*PgUserRepository)(nil)

func (r *PgUserRepository) Create(ctx context.Context, u *repository.User) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, display_name, email, designation, years_of_experience, avatar, password_hash)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING created_at, updated_at
	`, u.ID, u.DisplayName, u.Email, u.Designation, u.YearsOfExperience, u.Avatar, u.PasswordHash).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateDisplayName
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*repository.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row, "find user by id")
}

func (r *PgUserRepository) FindByDisplayName(ctx context.Context, displayName string) (*repository.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE display_name = $1`, displayName)
	return scanUser(row, "find user by display name")
}

func (r *PgUserRepository) List(ctx context.Context) ([]repository.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	defer rows.Close()

	var users []repository.User
	for rows.Next() {
		u, err := scanUser(rows, "scan user")
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

func (r *PgUserRepository) UpdateProfile(ctx context.Context, id, designation string, yearsOfExperience int) (*repository.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET designation = $2, years_of_experience = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, designation, yearsOfExperience)
	return scanUser(row, "update profile")
}

func (r *PgUserRepository) UpdateAvatar(ctx context.Context, id, avatar string) error {
	ct, err := r.pool.Exec(ctx, `UPDATE users SET avatar = $2, updated_at = now() WHERE id = $1`, id, avatar)
	if err != nil {
		return errors.Wrap(err, "update avatar")
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row, op string) (*repository.User, error) {
	var u repository.User
	err := row.Scan(&u.ID, &u.DisplayName, &u.Email, &u.Designation, &u.YearsOfExperience,
		&u.Avatar, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	return &u, nil
}

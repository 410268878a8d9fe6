package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL,
	id_proof TEXT NOT NULL,
	id_type TEXT NOT NULL,
	mobile BIGINT NOT NULL
);
`

const uniqueViolation = "23505"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	if user.ID > 0 {
		return r.createWithID(ctx, user)
	}

	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (username, id_proof, id_type, mobile)
VALUES ($1, $2, $3, $4)
RETURNING id`,
		user.UserName,
		user.IDProof,
		user.IDType,
		user.Mobile,
	).Scan(&user.ID)
	if err != nil {
		return 0, insertError(err)
	}
	return user.ID, nil
}

// createWithID inserts a caller chosen id and moves the serial sequence past
// it so later generated ids do not collide.
func (r *UserRepository) createWithID(ctx context.Context, user *domain.User) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO users (id, username, id_proof, id_type, mobile)
VALUES ($1, $2, $3, $4, $5)`,
		user.ID,
		user.UserName,
		user.IDProof,
		user.IDType,
		user.Mobile,
	); err != nil {
		return 0, insertError(err)
	}

	if _, err := tx.ExecContext(ctx, `
SELECT setval(pg_get_serial_sequence('users', 'id'), GREATEST((SELECT MAX(id) FROM users), 1))`); err != nil {
		return 0, fmt.Errorf("advance user id sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return user.ID, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, id_proof, id_type, mobile
FROM users
WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.User], error) {
	page := domain.Page[domain.User]{Request: req, Content: []domain.User{}}

	orderBy, err := repository.OrderByClause(req.Sort)
	if err != nil {
		return page, err
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&page.TotalElements); err != nil {
		return page, fmt.Errorf("count users: %w", err)
	}
	if page.TotalElements == 0 || req.Offset() >= page.TotalElements {
		return page, nil
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, username, id_proof, id_type, mobile
FROM users
`+orderBy+`
LIMIT $1 OFFSET $2`,
		req.Size,
		req.Offset(),
	)
	if err != nil {
		return page, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return page, err
		}
		page.Content = append(page.Content, *user)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("iterate users: %w", err)
	}
	return page, nil
}

func insertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("insert user: %w", repository.ErrDuplicate)
	}
	return fmt.Errorf("insert user: %w", err)
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.UserName,
		&user.IDProof,
		&user.IDType,
		&user.Mobile,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

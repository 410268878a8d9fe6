package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	id_proof TEXT NOT NULL,
	id_type TEXT NOT NULL,
	mobile INTEGER NOT NULL
);
`

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
	var (
		res sql.Result
		err error
	)
	if user.ID > 0 {
		res, err = r.db.ExecContext(ctx, `
INSERT INTO users (id, username, id_proof, id_type, mobile)
VALUES (?, ?, ?, ?, ?)`,
			user.ID,
			user.UserName,
			user.IDProof,
			user.IDType,
			user.Mobile,
		)
	} else {
		res, err = r.db.ExecContext(ctx, `
INSERT INTO users (username, id_proof, id_type, mobile)
VALUES (?, ?, ?, ?)`,
			user.UserName,
			user.IDProof,
			user.IDType,
			user.Mobile,
		)
	}
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user last insert id: %w", err)
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, id_proof, id_type, mobile
FROM users
WHERE id = ?`,
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
LIMIT ? OFFSET ?`,
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

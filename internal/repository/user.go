package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mylibrary-user/internal/domain"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an insert breaks a unique key.
	ErrDuplicate = errors.New("user already exists")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Ping(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FindPage(ctx context.Context, req domain.PageRequest) (domain.Page[domain.User], error)
}

// userColumns maps sortable API properties to table columns.
var userColumns = map[string]string{
	"userId":   "id",
	"userName": "username",
	"idProof":  "id_proof",
	"idType":   "id_type",
	"mobile":   "mobile",
}

// IsSortable reports whether property can be used in a sort order.
func IsSortable(property string) bool {
	_, ok := userColumns[property]
	return ok
}

// OrderByClause renders the ORDER BY clause for orders. The id column is
// always appended as a tie breaker so pages never overlap.
func OrderByClause(orders []domain.Order) (string, error) {
	parts := make([]string, 0, len(orders)+1)
	hasID := false
	for _, o := range orders {
		column, ok := userColumns[o.Property]
		if !ok {
			return "", fmt.Errorf("unknown sort property %q", o.Property)
		}
		dir := "ASC"
		if o.Direction == domain.Desc {
			dir = "DESC"
		}
		if column == "id" {
			hasID = true
		}
		parts = append(parts, column+" "+dir)
	}
	if !hasID {
		parts = append(parts, "id ASC")
	}
	return "ORDER BY " + strings.Join(parts, ", "), nil
}

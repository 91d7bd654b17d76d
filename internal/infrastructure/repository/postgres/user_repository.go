package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/user"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	model := userTableModel{
		ID:           u.ID,
		Email:        strings.ToLower(u.Email),
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		PasswordSalt: u.PasswordSalt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	query, args, err := qb.InsertModel("users", model, "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", translateError(err))
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getBy(ctx, qb.Eq("id", userID))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getBy(ctx, qb.Eq("email", strings.ToLower(strings.TrimSpace(email))))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getBy(ctx, qb.Eq("username", strings.TrimSpace(username)))
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("role", string(role))).
		OrderBy("created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users by role: %w", translateError(err))
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}

	return out, nil
}

func (r *UserRepository) getBy(ctx context.Context, condition qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(condition).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", translateError(err))
	}

	return userFromRow(row), true, nil
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		FullName:     row.FullName,
		Role:         user.Role(row.Role),
		PasswordHash: row.PasswordHash,
		PasswordSalt: row.PasswordSalt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

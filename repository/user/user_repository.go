package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-management/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) error
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, data *model.UserEntity) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (username, name, password) VALUES (?, ?, ?)`
	getUserBase     = `SELECT username, name, password, token, token_expired_at FROM users WHERE true`
	updateUserQuery = `UPDATE users SET name = ?, password = ?, token = ?, token_expired_at = ? WHERE username = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, insertUserQuery, data.Username, data.Name, data.PasswordHash)
	return err
}

// Get returns the first user matching the filter, or nil when no row
// matches.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Token != "" {
		query += " AND token = ?"
		args = append(args, filter.Token)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Update writes all mutable user columns, including the token pair so that
// login and logout persist through the same statement.
func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateUserQuery,
		data.Name, data.PasswordHash, data.Token, data.TokenExpiredAt, data.Username)
	return err
}

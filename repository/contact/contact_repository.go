package contact

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-management/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	Create(ctx context.Context, data *model.ContactEntity) error
	Get(ctx context.Context, username, id string) (*model.ContactEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, username, id string) (*model.ContactEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ContactEntity) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, username, id string) error
	Search(ctx context.Context, filter *model.ContactFilter) ([]model.ContactEntity, int64, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	insertContactQuery = `INSERT INTO contacts (id, username, first_name, last_name, email, phone) VALUES (?, ?, ?, ?, ?, ?)`
	getContactQuery    = `SELECT id, username, first_name, last_name, email, phone FROM contacts WHERE username = ? AND id = ?`
	updateContactQuery = `UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE username = ? AND id = ?`
	deleteContactQuery = `DELETE FROM contacts WHERE username = ? AND id = ?`

	searchContactBase = `SELECT id, username, first_name, last_name, email, phone FROM contacts`
	countContactBase  = `SELECT COUNT(*) FROM contacts`
)

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) error {
	_, err := s.conn.ExecContext(ctx, insertContactQuery,
		data.ID, data.Username, data.FirstName, data.LastName, data.Email, data.Phone)
	return err
}

// Get returns the contact scoped to the owning username, or nil when the
// contact does not exist or belongs to another user.
func (s *SQL) Get(ctx context.Context, username, id string) (*model.ContactEntity, error) {
	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, getContactQuery, username, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, username, id string) (*model.ContactEntity, error) {
	var entity model.ContactEntity
	if err := tx.QueryRowxContext(ctx, getContactQuery, username, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ContactEntity) error {
	_, err := tx.ExecContext(ctx, updateContactQuery,
		data.FirstName, data.LastName, data.Email, data.Phone, data.Username, data.ID)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, username, id string) error {
	_, err := tx.ExecContext(ctx, deleteContactQuery, username, id)
	return err
}

// buildSearchWhere composes the conjunctive predicate: ownership equality
// is always present, each optional filter adds a parameterized clause and
// is omitted entirely when blank.
func buildSearchWhere(filter *model.ContactFilter) (string, []any) {
	where := " WHERE username = ?"
	args := []any{filter.Username}

	if filter.Name != "" {
		where += " AND (LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)"
		pattern := "%" + strings.ToLower(filter.Name) + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Email != "" {
		where += " AND email LIKE ?"
		args = append(args, "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		where += " AND phone LIKE ?"
		args = append(args, "%"+filter.Phone+"%")
	}

	return where, args
}

// Search returns one page of matching contacts plus the total match count.
// Page is zero-based.
func (s *SQL) Search(ctx context.Context, filter *model.ContactFilter) ([]model.ContactEntity, int64, error) {
	where, args := buildSearchWhere(filter)

	query := searchContactBase + where + " ORDER BY id LIMIT ? OFFSET ?"
	offset := filter.Page * filter.Size
	rows, err := s.conn.QueryxContext(ctx, query, append(args, filter.Size, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ContactEntity, 0)
	for rows.Next() {
		var it model.ContactEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countContactBase+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

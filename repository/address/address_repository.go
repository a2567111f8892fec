package address

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-management/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AddressRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AddressEntity) error
	Get(ctx context.Context, contactID, id string) (*model.AddressEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, contactID, id string) (*model.AddressEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.AddressEntity) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, contactID, id string) error
	DeleteByContactTx(ctx context.Context, tx *sqlx.Tx, contactID string) error
	ListByContact(ctx context.Context, contactID string) ([]model.AddressEntity, error)
}

func NewAddressRepository(conn *sqlx.DB) AddressRepository {
	return &SQL{conn: conn}
}

const (
	insertAddressQuery          = `INSERT INTO addresses (id, contact_id, street, city, province, country, postal_code) VALUES (?, ?, ?, ?, ?, ?, ?)`
	getAddressQuery             = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE contact_id = ? AND id = ?`
	updateAddressQuery          = `UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ? WHERE contact_id = ? AND id = ?`
	deleteAddressQuery          = `DELETE FROM addresses WHERE contact_id = ? AND id = ?`
	deleteAddressByContactQuery = `DELETE FROM addresses WHERE contact_id = ?`
	listAddressQuery            = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE contact_id = ? ORDER BY id`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AddressEntity) error {
	_, err := tx.ExecContext(ctx, insertAddressQuery,
		data.ID, data.ContactID, data.Street, data.City, data.Province, data.Country, data.PostalCode)
	return err
}

// Get returns the address scoped to the owning contact, or nil when the
// address does not exist under that contact.
func (s *SQL) Get(ctx context.Context, contactID, id string) (*model.AddressEntity, error) {
	var entity model.AddressEntity
	if err := s.conn.QueryRowxContext(ctx, getAddressQuery, contactID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, contactID, id string) (*model.AddressEntity, error) {
	var entity model.AddressEntity
	if err := tx.QueryRowxContext(ctx, getAddressQuery, contactID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.AddressEntity) error {
	_, err := tx.ExecContext(ctx, updateAddressQuery,
		data.Street, data.City, data.Province, data.Country, data.PostalCode, data.ContactID, data.ID)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, contactID, id string) error {
	_, err := tx.ExecContext(ctx, deleteAddressQuery, contactID, id)
	return err
}

func (s *SQL) DeleteByContactTx(ctx context.Context, tx *sqlx.Tx, contactID string) error {
	_, err := tx.ExecContext(ctx, deleteAddressByContactQuery, contactID)
	return err
}

func (s *SQL) ListByContact(ctx context.Context, contactID string) ([]model.AddressEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listAddressQuery, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AddressEntity, 0)
	for rows.Next() {
		var it model.AddressEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

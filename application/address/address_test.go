package address_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	appaddress "github.com/muhammadheryan/contact-management/application/address"
	"github.com/muhammadheryan/contact-management/constant"
	addressmocks "github.com/muhammadheryan/contact-management/mocks/repository/address"
	contactmocks "github.com/muhammadheryan/contact-management/mocks/repository/contact"
	txmocks "github.com/muhammadheryan/contact-management/mocks/repository/tx"
	"github.com/muhammadheryan/contact-management/model"
	cerr "github.com/muhammadheryan/contact-management/utils/errors"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

// newTestTx produces a real transaction handle backed by sqlmock so that
// the mocked TxRepository has something concrete to hand out.
func newTestTx(t *testing.T) *sqlx.Tx {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dbMock.ExpectBegin()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	if err != nil {
		t.Fatalf("Beginx: %v", err)
	}
	return tx
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestAddressApp_Create(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("success", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.AddressEntity) bool {
				return ent.ID != "" &&
					ent.ContactID == "contact-1" &&
					ent.Country == "Indonesia" &&
					ent.Street != nil && *ent.Street == "Jalan Sudirman" &&
					ent.City == nil
			})).
			Return(nil).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressRepo, nil)

		got, err := app.Create(context.Background(), user, "contact-1", &model.AddressRequest{
			Street:  "Jalan Sudirman",
			Country: "Indonesia",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ID == "" || got.Country != "Indonesia" || got.City != "" {
			t.Fatalf("Create() = %+v", got)
		}
	})

	t.Run("error: contact not found blocks the insert", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "missing").
			Return(nil, nil).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressmocks.NewAddressRepository(t), nil)

		_, err := app.Create(context.Background(), user, "missing", &model.AddressRequest{Country: "Indonesia"})
		assertErrCode(t, err, constant.ErrContactNotFound)
	})

	t.Run("error: insert failure rolls back", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("CreateTx", mock.Anything, tx, mock.AnythingOfType("*model.AddressEntity")).
			Return(errors.New("db error")).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressRepo, nil)

		_, err := app.Create(context.Background(), user, "contact-1", &model.AddressRequest{Country: "Indonesia"})
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestAddressApp_Get(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("success", func(t *testing.T) {
		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("Get", mock.Anything, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("Get", mock.Anything, "contact-1", "address-1").
			Return(&model.AddressEntity{
				ID:         "address-1",
				ContactID:  "contact-1",
				Street:     strPtr("Jalan Sudirman"),
				Country:    "Indonesia",
				PostalCode: strPtr("12190"),
			}, nil).
			Once()

		app := appaddress.NewAddressApp(txmocks.NewTxRepository(t), contactRepo, addressRepo, nil)

		got, err := app.Get(context.Background(), user, "contact-1", "address-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.ID != "address-1" || got.Street != "Jalan Sudirman" || got.PostalCode != "12190" {
			t.Fatalf("Get() = %+v", got)
		}
	})

	t.Run("error: contact not found wins over address lookup", func(t *testing.T) {
		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("Get", mock.Anything, "budi", "missing").
			Return(nil, nil).
			Once()

		app := appaddress.NewAddressApp(txmocks.NewTxRepository(t), contactRepo, addressmocks.NewAddressRepository(t), nil)

		_, err := app.Get(context.Background(), user, "missing", "address-1")
		assertErrCode(t, err, constant.ErrContactNotFound)
	})

	t.Run("error: address not found", func(t *testing.T) {
		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("Get", mock.Anything, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("Get", mock.Anything, "contact-1", "missing").
			Return(nil, nil).
			Once()

		app := appaddress.NewAddressApp(txmocks.NewTxRepository(t), contactRepo, addressRepo, nil)

		_, err := app.Get(context.Background(), user, "contact-1", "missing")
		assertErrCode(t, err, constant.ErrAddressNotFound)
	})
}

func TestAddressApp_Update(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("success: full replace clears omitted optionals", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("GetTx", mock.Anything, tx, "contact-1", "address-1").
			Return(&model.AddressEntity{
				ID:        "address-1",
				ContactID: "contact-1",
				Street:    strPtr("Jalan Sudirman"),
				City:      strPtr("Jakarta"),
				Country:   "Indonesia",
			}, nil).
			Once()
		addressRepo.
			On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.AddressEntity) bool {
				return ent.ID == "address-1" &&
					ent.Country == "Singapore" &&
					ent.Street == nil && ent.City == nil
			})).
			Return(nil).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressRepo, nil)

		got, err := app.Update(context.Background(), user, "contact-1", "address-1", &model.AddressRequest{Country: "Singapore"})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.Country != "Singapore" || got.Street != "" {
			t.Fatalf("Update() = %+v", got)
		}
	})

	t.Run("error: address not found", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("GetTx", mock.Anything, tx, "contact-1", "missing").
			Return(nil, nil).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressRepo, nil)

		_, err := app.Update(context.Background(), user, "contact-1", "missing", &model.AddressRequest{Country: "Singapore"})
		assertErrCode(t, err, constant.ErrAddressNotFound)
	})
}

func TestAddressApp_Delete(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("success", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("GetTx", mock.Anything, tx, "contact-1", "address-1").
			Return(&model.AddressEntity{ID: "address-1", ContactID: "contact-1", Country: "Indonesia"}, nil).
			Once()
		addressRepo.
			On("DeleteTx", mock.Anything, tx, "contact-1", "address-1").
			Return(nil).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressRepo, nil)

		if err := app.Delete(context.Background(), user, "contact-1", "address-1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("error: contact owned by someone else reads as contact not found", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "contact-of-ani").
			Return(nil, nil).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressmocks.NewAddressRepository(t), nil)

		err := app.Delete(context.Background(), user, "contact-of-ani", "address-1")
		assertErrCode(t, err, constant.ErrContactNotFound)
	})

	t.Run("error: address not found is not an internal error", func(t *testing.T) {
		tx := newTestTx(t)
		txRepo := txmocks.NewTxRepository(t)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("GetTx", mock.Anything, tx, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("GetTx", mock.Anything, tx, "contact-1", "missing").
			Return(nil, nil).
			Once()

		app := appaddress.NewAddressApp(txRepo, contactRepo, addressRepo, nil)

		err := app.Delete(context.Background(), user, "contact-1", "missing")
		assertErrCode(t, err, constant.ErrAddressNotFound)
	})
}

func TestAddressApp_List(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("success: empty list stays a list", func(t *testing.T) {
		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("Get", mock.Anything, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("ListByContact", mock.Anything, "contact-1").
			Return([]model.AddressEntity{}, nil).
			Once()

		app := appaddress.NewAddressApp(txmocks.NewTxRepository(t), contactRepo, addressRepo, nil)

		got, err := app.List(context.Background(), user, "contact-1")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("List() = %v, want empty non-nil slice", got)
		}
	})

	t.Run("success: two addresses", func(t *testing.T) {
		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("Get", mock.Anything, "budi", "contact-1").
			Return(&model.ContactEntity{ID: "contact-1", Username: "budi", FirstName: "Eko"}, nil).
			Once()

		addressRepo := addressmocks.NewAddressRepository(t)
		addressRepo.
			On("ListByContact", mock.Anything, "contact-1").
			Return([]model.AddressEntity{
				{ID: "address-1", ContactID: "contact-1", Country: "Indonesia"},
				{ID: "address-2", ContactID: "contact-1", Country: "Singapore", City: strPtr("Singapore")},
			}, nil).
			Once()

		app := appaddress.NewAddressApp(txmocks.NewTxRepository(t), contactRepo, addressRepo, nil)

		got, err := app.List(context.Background(), user, "contact-1")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 || got[1].City != "Singapore" {
			t.Fatalf("List() = %+v", got)
		}
	})

	t.Run("error: contact not found", func(t *testing.T) {
		contactRepo := contactmocks.NewContactRepository(t)
		contactRepo.
			On("Get", mock.Anything, "budi", "missing").
			Return(nil, nil).
			Once()

		app := appaddress.NewAddressApp(txmocks.NewTxRepository(t), contactRepo, addressmocks.NewAddressRepository(t), nil)

		_, err := app.List(context.Background(), user, "missing")
		assertErrCode(t, err, constant.ErrContactNotFound)
	})
}

package address

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-management/constant"
	"github.com/muhammadheryan/contact-management/model"
	addressrepo "github.com/muhammadheryan/contact-management/repository/address"
	contactrepo "github.com/muhammadheryan/contact-management/repository/contact"
	txrepo "github.com/muhammadheryan/contact-management/repository/tx"
	"github.com/muhammadheryan/contact-management/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-management/utils/errors"
	"github.com/muhammadheryan/contact-management/utils/logger"
	"go.uber.org/zap"
)

type AddressApp interface {
	Create(ctx context.Context, user *model.UserEntity, idContact string, req *model.AddressRequest) (*model.AddressResponse, error)
	Get(ctx context.Context, user *model.UserEntity, idContact, idAddress string) (*model.AddressResponse, error)
	Update(ctx context.Context, user *model.UserEntity, idContact, idAddress string, req *model.AddressRequest) (*model.AddressResponse, error)
	Delete(ctx context.Context, user *model.UserEntity, idContact, idAddress string) error
	List(ctx context.Context, user *model.UserEntity, idContact string) ([]model.AddressResponse, error)
}

type addressAppImpl struct {
	txRepo      txrepo.TxRepository
	contactRepo contactrepo.ContactRepository
	addressRepo addressrepo.AddressRepository
	publisher   *rabbitmq.Publisher
}

func NewAddressApp(txRepo txrepo.TxRepository, contactRepo contactrepo.ContactRepository, addressRepo addressrepo.AddressRepository, publisher *rabbitmq.Publisher) AddressApp {
	return &addressAppImpl{
		txRepo:      txRepo,
		contactRepo: contactRepo,
		addressRepo: addressRepo,
		publisher:   publisher,
	}
}

// Create inserts an address under the caller's contact. The contact lookup
// and the insert share one transaction.
func (s *addressAppImpl) Create(ctx context.Context, user *model.UserEntity, idContact string, req *model.AddressRequest) (*model.AddressResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateAddress] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	contact, err := s.resolveContactTx(ctx, tx, user, idContact, "CreateAddress")
	if err != nil {
		return nil, err
	}

	entity := &model.AddressEntity{
		ID:         uuid.NewString(),
		ContactID:  contact.ID,
		Street:     optional(req.Street),
		City:       optional(req.City),
		Province:   optional(req.Province),
		Country:    req.Country,
		PostalCode: optional(req.PostalCode),
	}

	if err := s.addressRepo.CreateTx(ctx, tx, entity); err != nil {
		logger.Error("[CreateAddress] err addressRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateAddress] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.audit("create", entity.ID, user.Username)
	return toAddressResponse(entity), nil
}

func (s *addressAppImpl) Get(ctx context.Context, user *model.UserEntity, idContact, idAddress string) (*model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, idContact, "GetAddress")
	if err != nil {
		return nil, err
	}

	entity, err := s.addressRepo.Get(ctx, contact.ID, idAddress)
	if err != nil {
		logger.Error("[GetAddress] err addressRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrAddressNotFound)
	}

	return toAddressResponse(entity), nil
}

// Update overwrites every mutable field with the request values
// (full-replace semantics), inside one transaction.
func (s *addressAppImpl) Update(ctx context.Context, user *model.UserEntity, idContact, idAddress string, req *model.AddressRequest) (*model.AddressResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateAddress] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	contact, err := s.resolveContactTx(ctx, tx, user, idContact, "UpdateAddress")
	if err != nil {
		return nil, err
	}

	entity, err := s.addressRepo.GetTx(ctx, tx, contact.ID, idAddress)
	if err != nil {
		logger.Error("[UpdateAddress] err addressRepo.GetTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrAddressNotFound)
	}

	entity.Street = optional(req.Street)
	entity.City = optional(req.City)
	entity.Province = optional(req.Province)
	entity.Country = req.Country
	entity.PostalCode = optional(req.PostalCode)

	if err := s.addressRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[UpdateAddress] err addressRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateAddress] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.audit("update", entity.ID, user.Username)
	return toAddressResponse(entity), nil
}

func (s *addressAppImpl) Delete(ctx context.Context, user *model.UserEntity, idContact, idAddress string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteAddress] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	contact, err := s.resolveContactTx(ctx, tx, user, idContact, "DeleteAddress")
	if err != nil {
		return err
	}

	entity, err := s.addressRepo.GetTx(ctx, tx, contact.ID, idAddress)
	if err != nil {
		logger.Error("[DeleteAddress] err addressRepo.GetTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrAddressNotFound)
	}

	if err := s.addressRepo.DeleteTx(ctx, tx, contact.ID, idAddress); err != nil {
		logger.Error("[DeleteAddress] err addressRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteAddress] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.audit("delete", idAddress, user.Username)
	return nil
}

func (s *addressAppImpl) List(ctx context.Context, user *model.UserEntity, idContact string) ([]model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, idContact, "ListAddresses")
	if err != nil {
		return nil, err
	}

	items, err := s.addressRepo.ListByContact(ctx, contact.ID)
	if err != nil {
		logger.Error("[ListAddresses] err addressRepo.ListByContact", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	responses := make([]model.AddressResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toAddressResponse(&items[i]))
	}
	return responses, nil
}

// resolveContact enforces the ownership chain: every address operation
// fails as contact-not-found before any address row is touched.
func (s *addressAppImpl) resolveContact(ctx context.Context, user *model.UserEntity, idContact, op string) (*model.ContactEntity, error) {
	contact, err := s.contactRepo.Get(ctx, user.Username, idContact)
	if err != nil {
		logger.Error("["+op+"] err contactRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if contact == nil {
		return nil, errors.SetCustomError(constant.ErrContactNotFound)
	}
	return contact, nil
}

func (s *addressAppImpl) resolveContactTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity, idContact, op string) (*model.ContactEntity, error) {
	contact, err := s.contactRepo.GetTx(ctx, tx, user.Username, idContact)
	if err != nil {
		logger.Error("["+op+"] err contactRepo.GetTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if contact == nil {
		return nil, errors.SetCustomError(constant.ErrContactNotFound)
	}
	return contact, nil
}

func (s *addressAppImpl) audit(action, id, username string) {
	msg := rabbitmq.AuditMessage{
		Entity:     "address",
		Action:     action,
		ID:         id,
		Username:   username,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishAudit(msg); err != nil {
		logger.Warn("[AddressAudit] publish", zap.String("error", err.Error()))
	}
}

func toAddressResponse(entity *model.AddressEntity) *model.AddressResponse {
	return &model.AddressResponse{
		ID:         entity.ID,
		Street:     deref(entity.Street),
		City:       deref(entity.City),
		Province:   deref(entity.Province),
		Country:    entity.Country,
		PostalCode: deref(entity.PostalCode),
	}
}

// optional maps a blank request field to NULL instead of empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

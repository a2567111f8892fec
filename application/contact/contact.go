package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
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

type ContactApp interface {
	Create(ctx context.Context, user *model.UserEntity, req *model.ContactRequest) (*model.ContactResponse, error)
	Get(ctx context.Context, user *model.UserEntity, id string) (*model.ContactResponse, error)
	Update(ctx context.Context, user *model.UserEntity, id string, req *model.ContactRequest) (*model.ContactResponse, error)
	Delete(ctx context.Context, user *model.UserEntity, id string) error
	Search(ctx context.Context, user *model.UserEntity, req *model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error)
}

type contactAppImpl struct {
	txRepo      txrepo.TxRepository
	contactRepo contactrepo.ContactRepository
	addressRepo addressrepo.AddressRepository
	publisher   *rabbitmq.Publisher
}

func NewContactApp(txRepo txrepo.TxRepository, contactRepo contactrepo.ContactRepository, addressRepo addressrepo.AddressRepository, publisher *rabbitmq.Publisher) ContactApp {
	return &contactAppImpl{
		txRepo:      txRepo,
		contactRepo: contactRepo,
		addressRepo: addressRepo,
		publisher:   publisher,
	}
}

func (s *contactAppImpl) Create(ctx context.Context, user *model.UserEntity, req *model.ContactRequest) (*model.ContactResponse, error) {
	entity := &model.ContactEntity{
		ID:        uuid.NewString(),
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  optional(req.LastName),
		Email:     optional(req.Email),
		Phone:     optional(req.Phone),
	}

	if err := s.contactRepo.Create(ctx, entity); err != nil {
		logger.Error("[CreateContact] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.audit("create", entity.ID, user.Username)
	return toContactResponse(entity), nil
}

func (s *contactAppImpl) Get(ctx context.Context, user *model.UserEntity, id string) (*model.ContactResponse, error) {
	entity, err := s.contactRepo.Get(ctx, user.Username, id)
	if err != nil {
		logger.Error("[GetContact] err contactRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrContactNotFound)
	}
	return toContactResponse(entity), nil
}

// Update overwrites every mutable field with the request values, including
// to blank when so supplied. Lookup and write share one transaction.
func (s *contactAppImpl) Update(ctx context.Context, user *model.UserEntity, id string, req *model.ContactRequest) (*model.ContactResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateContact] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.contactRepo.GetTx(ctx, tx, user.Username, id)
	if err != nil {
		logger.Error("[UpdateContact] err contactRepo.GetTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrContactNotFound)
	}

	entity.FirstName = req.FirstName
	entity.LastName = optional(req.LastName)
	entity.Email = optional(req.Email)
	entity.Phone = optional(req.Phone)

	if err := s.contactRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[UpdateContact] err contactRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateContact] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.audit("update", entity.ID, user.Username)
	return toContactResponse(entity), nil
}

// Delete removes the contact and all of its addresses in one transaction.
func (s *contactAppImpl) Delete(ctx context.Context, user *model.UserEntity, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteContact] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.contactRepo.GetTx(ctx, tx, user.Username, id)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.GetTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrContactNotFound)
	}

	if err := s.addressRepo.DeleteByContactTx(ctx, tx, entity.ID); err != nil {
		logger.Error("[DeleteContact] err addressRepo.DeleteByContactTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.contactRepo.DeleteTx(ctx, tx, user.Username, id); err != nil {
		logger.Error("[DeleteContact] err contactRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteContact] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.audit("delete", id, user.Username)
	return nil
}

// Search runs the conjunctive filter scoped to the caller and returns one
// zero-based page plus the paging summary.
func (s *contactAppImpl) Search(ctx context.Context, user *model.UserEntity, req *model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error) {
	filter := &model.ContactFilter{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Page:     req.Page,
		Size:     req.Size,
	}

	items, total, err := s.contactRepo.Search(ctx, filter)
	if err != nil {
		logger.Error("[SearchContacts] err contactRepo.Search", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}

	responses := make([]model.ContactResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toContactResponse(&items[i]))
	}

	// Zero matches means zero pages, not one.
	totalPages := int((total + int64(req.Size) - 1) / int64(req.Size))

	return responses, &model.Paging{
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		Size:        req.Size,
	}, nil
}

func (s *contactAppImpl) audit(action, id, username string) {
	msg := rabbitmq.AuditMessage{
		Entity:     "contact",
		Action:     action,
		ID:         id,
		Username:   username,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishAudit(msg); err != nil {
		logger.Warn("[ContactAudit] publish", zap.String("error", err.Error()))
	}
}

func toContactResponse(entity *model.ContactEntity) *model.ContactResponse {
	return &model.ContactResponse{
		ID:        entity.ID,
		FirstName: entity.FirstName,
		LastName:  deref(entity.LastName),
		Email:     deref(entity.Email),
		Phone:     deref(entity.Phone),
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

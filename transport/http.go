package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	addressapp "github.com/muhammadheryan/contact-management/application/address"
	authapp "github.com/muhammadheryan/contact-management/application/auth"
	contactapp "github.com/muhammadheryan/contact-management/application/contact"
	userapp "github.com/muhammadheryan/contact-management/application/user"
	"github.com/muhammadheryan/contact-management/constant"
	"github.com/muhammadheryan/contact-management/model"
	utilsContext "github.com/muhammadheryan/contact-management/utils/context"
	"github.com/muhammadheryan/contact-management/utils/errors"
	validatorx "github.com/muhammadheryan/contact-management/utils/validator"
)

const (
	defaultSearchPage = 0
	defaultSearchSize = 10
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	UserApp    userapp.UserApp
	ContactApp contactapp.ContactApp
	AddressApp addressapp.AddressApp
}

func NewTransport(authApp authapp.AuthApp, userApp userapp.UserApp, contactApp contactapp.ContactApp, addressApp addressapp.AddressApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    authApp,
		UserApp:    userApp,
		ContactApp: contactApp,
		AddressApp: addressApp,
	}

	// Public routes
	mux.HandleFunc("/api/users", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/api/auth/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/api/users/current", rh.GetCurrentUser).Methods(http.MethodGet)
	mux.HandleFunc("/api/users/current", rh.UpdateCurrentUser).Methods(http.MethodPatch)
	mux.HandleFunc("/api/logout", rh.Logout).Methods(http.MethodDelete)

	mux.HandleFunc("/api/contacts", rh.CreateContact).Methods(http.MethodPost)
	mux.HandleFunc("/api/contacts", rh.SearchContacts).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{idContact}", rh.GetContact).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{idContact}", rh.UpdateContact).Methods(http.MethodPut)
	mux.HandleFunc("/api/contacts/{idContact}", rh.DeleteContact).Methods(http.MethodDelete)

	mux.HandleFunc("/api/contacts/{idContact}/addresses", rh.CreateAddress).Methods(http.MethodPost)
	mux.HandleFunc("/api/contacts/{idContact}/addresses", rh.ListAddresses).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{idContact}/addresses/{idAddress}", rh.GetAddress).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{idContact}/addresses/{idAddress}", rh.UpdateAddress).Methods(http.MethodPut)
	mux.HandleFunc("/api/contacts/{idContact}/addresses/{idAddress}", rh.DeleteAddress).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp))

	return mux
}

func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	if err := s.UserApp.Register(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OK")
}

func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.AuthApp.Logout(ctx, user); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OK")
}

func (s *RestHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	writeSuccess(w, s.UserApp.Get(ctx, user))
}

func (s *RestHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.UserApp.Update(ctx, user, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.ContactApp.Create(ctx, user, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ContactApp.Get(ctx, user, mux.Vars(r)["idContact"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.ContactApp.Update(ctx, user, mux.Vars(r)["idContact"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.ContactApp.Delete(ctx, user, mux.Vars(r)["idContact"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OK")
}

func (s *RestHandler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	req, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	items, paging, err := s.ContactApp.Search(ctx, user, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessPaging(w, items, paging)
}

// parseSearchRequest reads the optional filters and the pagination window
// from the query string. Page and size default to 0 and 10 and must parse
// as integers when present.
func parseSearchRequest(r *http.Request) (*model.SearchContactRequest, error) {
	query := r.URL.Query()

	req := &model.SearchContactRequest{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
		Page:  defaultSearchPage,
		Size:  defaultSearchSize,
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "page must be an integer")
		}
		req.Page = page
	}
	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "size must be an integer")
		}
		req.Size = size
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error())
	}
	return req, nil
}

func (s *RestHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.AddressApp.Create(ctx, user, mux.Vars(r)["idContact"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	vars := mux.Vars(r)
	res, err := s.AddressApp.Get(ctx, user, vars["idContact"], vars["idAddress"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, err.Error()))
		return
	}

	vars := mux.Vars(r)
	res, err := s.AddressApp.Update(ctx, user, vars["idContact"], vars["idAddress"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	vars := mux.Vars(r)
	if err := s.AddressApp.Delete(ctx, user, vars["idContact"], vars["idAddress"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "OK")
}

func (s *RestHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utilsContext.GetUser(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AddressApp.List(ctx, user, mux.Vars(r)["idContact"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

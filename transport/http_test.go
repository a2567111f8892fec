package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/contact-management/constant"
	addressappmocks "github.com/muhammadheryan/contact-management/mocks/application/address"
	authappmocks "github.com/muhammadheryan/contact-management/mocks/application/auth"
	contactappmocks "github.com/muhammadheryan/contact-management/mocks/application/contact"
	userappmocks "github.com/muhammadheryan/contact-management/mocks/application/user"
	"github.com/muhammadheryan/contact-management/model"
	"github.com/muhammadheryan/contact-management/transport"
	"github.com/muhammadheryan/contact-management/utils/errors"
	"github.com/stretchr/testify/mock"
)

type apps struct {
	auth    *authappmocks.AuthApp
	user    *userappmocks.UserApp
	contact *contactappmocks.ContactApp
	address *addressappmocks.AddressApp
}

func newTestServer(t *testing.T) (apps, http.Handler) {
	t.Helper()

	a := apps{
		auth:    authappmocks.NewAuthApp(t),
		user:    userappmocks.NewUserApp(t),
		contact: contactappmocks.NewContactApp(t),
		address: addressappmocks.NewAddressApp(t),
	}
	return a, transport.NewTransport(a.auth, a.user, a.contact, a.address)
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Paging *model.Paging   `json:"paging"`
}

func doRequest(t *testing.T, h http.Handler, method, target, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set(transport.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("success returns OK without authentication", func(t *testing.T) {
		a, h := newTestServer(t)
		a.user.
			On("Register", mock.Anything, &model.RegisterRequest{
				Username: "budi", Password: "rahasia", Name: "Budi Santoso",
			}).
			Return(nil).
			Once()

		rec, env := doRequest(t, h, http.MethodPost, "/api/users", "",
			`{"username":"budi","password":"rahasia","name":"Budi Santoso"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if string(env.Data) != `"OK"` {
			t.Fatalf("data = %s, want \"OK\"", env.Data)
		}
	})

	t.Run("blank fields fail validation with field names from the payload", func(t *testing.T) {
		_, h := newTestServer(t)

		rec, env := doRequest(t, h, http.MethodPost, "/api/users", "",
			`{"username":"","password":"","name":"Budi"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(env.Error, "username must not be blank") ||
			!strings.Contains(env.Error, "password must not be blank") {
			t.Fatalf("error = %q", env.Error)
		}
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		_, h := newTestServer(t)

		rec, _ := doRequest(t, h, http.MethodPost, "/api/users", "", `{not json`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("duplicate username surfaces the conflict message", func(t *testing.T) {
		a, h := newTestServer(t)
		a.user.
			On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(errors.SetCustomError(constant.ErrUsernameRegistered)).
			Once()

		rec, env := doRequest(t, h, http.MethodPost, "/api/users", "",
			`{"username":"budi","password":"rahasia","name":"Budi"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "Username already registered" {
			t.Fatalf("error = %q", env.Error)
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success returns token and expiry", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Login", mock.Anything, &model.LoginRequest{Username: "budi", Password: "rahasia"}).
			Return(&model.TokenResponse{Token: "token-1", ExpiredAt: 1700000000000}, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodPost, "/api/auth/login", "",
			`{"username":"budi","password":"rahasia"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var tr model.TokenResponse
		if err := json.Unmarshal(env.Data, &tr); err != nil {
			t.Fatal(err)
		}
		if tr.Token != "token-1" || tr.ExpiredAt != 1700000000000 {
			t.Fatalf("data = %+v", tr)
		}
	})

	t.Run("bad credentials are a 401 with one fixed message", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(nil, errors.SetCustomError(constant.ErrInvalidCredential)).
			Once()

		rec, env := doRequest(t, h, http.MethodPost, "/api/auth/login", "",
			`{"username":"budi","password":"salah"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if env.Error != "Username or password is incorrect" {
			t.Fatalf("error = %q", env.Error)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token on a protected route is a 401", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "").
			Return(nil, errors.SetCustomError(constant.ErrUnauthorize)).
			Once()

		rec, env := doRequest(t, h, http.MethodGet, "/api/users/current", "", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if env.Error != "Unauthorized" {
			t.Fatalf("error = %q", env.Error)
		}
	})

	t.Run("valid token resolves the caller for the handler", func(t *testing.T) {
		a, h := newTestServer(t)
		user := &model.UserEntity{Username: "budi", Name: "Budi Santoso"}
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.user.
			On("Get", mock.Anything, user).
			Return(&model.UserResponse{Username: "budi", Name: "Budi Santoso"}).
			Once()

		rec, env := doRequest(t, h, http.MethodGet, "/api/users/current", "token-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var ur model.UserResponse
		if err := json.Unmarshal(env.Data, &ur); err != nil {
			t.Fatal(err)
		}
		if ur.Username != "budi" {
			t.Fatalf("data = %+v", ur)
		}
	})

	t.Run("registration and login do not go through authentication", func(t *testing.T) {
		a, h := newTestServer(t)
		a.user.
			On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(nil).
			Once()

		rec, _ := doRequest(t, h, http.MethodPost, "/api/users", "",
			`{"username":"budi","password":"rahasia","name":"Budi"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		a.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	a, h := newTestServer(t)
	user := &model.UserEntity{Username: "budi"}
	a.auth.
		On("Authenticate", mock.Anything, "token-1").
		Return(user, nil).
		Once()
	a.auth.
		On("Logout", mock.Anything, user).
		Return(nil).
		Once()

	rec, env := doRequest(t, h, http.MethodDelete, "/api/logout", "token-1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if string(env.Data) != `"OK"` {
		t.Fatalf("data = %s", env.Data)
	}
}

func TestContactEndpoints(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("get contact not found is a 404", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.contact.
			On("Get", mock.Anything, user, "missing").
			Return(nil, errors.SetCustomError(constant.ErrContactNotFound)).
			Once()

		rec, env := doRequest(t, h, http.MethodGet, "/api/contacts/missing", "token-1", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if env.Error != "Contact is not found" {
			t.Fatalf("error = %q", env.Error)
		}
	})

	t.Run("update passes the path id and body through", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.contact.
			On("Update", mock.Anything, user, "contact-1", &model.ContactRequest{FirstName: "Joko"}).
			Return(&model.ContactResponse{ID: "contact-1", FirstName: "Joko"}, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodPut, "/api/contacts/contact-1", "token-1",
			`{"firstName":"Joko"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var cr model.ContactResponse
		if err := json.Unmarshal(env.Data, &cr); err != nil {
			t.Fatal(err)
		}
		if cr.FirstName != "Joko" {
			t.Fatalf("data = %+v", cr)
		}
	})

	t.Run("create without firstName fails validation", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodPost, "/api/contacts", "token-1", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(env.Error, "firstName must not be blank") {
			t.Fatalf("error = %q", env.Error)
		}
	})
}

func TestSearchContactsEndpoint(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("defaults page 0 size 10", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.contact.
			On("Search", mock.Anything, user, &model.SearchContactRequest{Page: 0, Size: 10}).
			Return([]model.ContactResponse{}, &model.Paging{CurrentPage: 0, TotalPages: 0, Size: 10}, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodGet, "/api/contacts", "token-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if env.Paging == nil || env.Paging.Size != 10 || env.Paging.TotalPages != 0 {
			t.Fatalf("paging = %+v", env.Paging)
		}
	})

	t.Run("filters and window come from the query string", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.contact.
			On("Search", mock.Anything, user, &model.SearchContactRequest{
				Name: "eko", Email: "example.com", Phone: "0812", Page: 2, Size: 5,
			}).
			Return([]model.ContactResponse{{ID: "contact-11", FirstName: "Eko"}},
				&model.Paging{CurrentPage: 2, TotalPages: 3, Size: 5}, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodGet,
			"/api/contacts?name=eko&email=example.com&phone=0812&page=2&size=5", "token-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if env.Paging == nil || env.Paging.CurrentPage != 2 || env.Paging.TotalPages != 3 {
			t.Fatalf("paging = %+v", env.Paging)
		}
	})

	t.Run("non-integer page is a bad request", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodGet, "/api/contacts?page=abc", "token-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if env.Error != "page must be an integer" {
			t.Fatalf("error = %q", env.Error)
		}
	})

	t.Run("zero size fails validation", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodGet, "/api/contacts?size=0", "token-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(env.Error, "size must be at least 1") {
			t.Fatalf("error = %q", env.Error)
		}
	})
}

func TestAddressEndpoints(t *testing.T) {
	user := &model.UserEntity{Username: "budi"}

	t.Run("get address under a foreign contact is contact not found", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.address.
			On("Get", mock.Anything, user, "contact-of-ani", "address-1").
			Return(nil, errors.SetCustomError(constant.ErrContactNotFound)).
			Once()

		rec, env := doRequest(t, h, http.MethodGet,
			"/api/contacts/contact-of-ani/addresses/address-1", "token-1", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if env.Error != "Contact is not found" {
			t.Fatalf("error = %q", env.Error)
		}
	})

	t.Run("create address without country fails validation", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodPost,
			"/api/contacts/contact-1/addresses", "token-1", `{"street":"Jalan Sudirman"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(env.Error, "country must not be blank") {
			t.Fatalf("error = %q", env.Error)
		}
	})

	t.Run("list returns the contact's addresses", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.address.
			On("List", mock.Anything, user, "contact-1").
			Return([]model.AddressResponse{
				{ID: "address-1", Country: "Indonesia"},
				{ID: "address-2", Country: "Singapore"},
			}, nil).
			Once()

		rec, env := doRequest(t, h, http.MethodGet,
			"/api/contacts/contact-1/addresses", "token-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var list []model.AddressResponse
		if err := json.Unmarshal(env.Data, &list); err != nil {
			t.Fatal(err)
		}
		if len(list) != 2 || list[1].Country != "Singapore" {
			t.Fatalf("data = %+v", list)
		}
	})

	t.Run("delete returns OK", func(t *testing.T) {
		a, h := newTestServer(t)
		a.auth.
			On("Authenticate", mock.Anything, "token-1").
			Return(user, nil).
			Once()
		a.address.
			On("Delete", mock.Anything, user, "contact-1", "address-1").
			Return(nil).
			Once()

		rec, env := doRequest(t, h, http.MethodDelete,
			"/api/contacts/contact-1/addresses/address-1", "token-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if string(env.Data) != `"OK"` {
			t.Fatalf("data = %s", env.Data)
		}
	})
}

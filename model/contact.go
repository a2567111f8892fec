package model

// ContactEntity represents the contacts table entity. Username is the
// owning user's foreign key; every read and write is scoped by it.
type ContactEntity struct {
	ID        string  `db:"id" json:"id"`
	Username  string  `db:"username" json:"-"`
	FirstName string  `db:"first_name" json:"first_name"`
	LastName  *string `db:"last_name" json:"last_name,omitempty"`
	Email     *string `db:"email" json:"email,omitempty"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
}

// ContactRequest is shared by create and update; update applies it with
// full-replace semantics.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=100"`
}

// SearchContactRequest carries the optional search filters plus the
// mandatory pagination window. Page is zero-based.
type SearchContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Page  int    `json:"page" validate:"min=0"`
	Size  int    `json:"size" validate:"min=1"`
}

// ContactFilter for the repository search query. Username is mandatory;
// blank filters are omitted from the predicate entirely.
type ContactFilter struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Page     int
	Size     int
}

type ContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

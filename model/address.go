package model

// AddressEntity represents the addresses table entity, owned by exactly one
// contact. Deleting the contact deletes its addresses.
type AddressEntity struct {
	ID         string  `db:"id" json:"id"`
	ContactID  string  `db:"contact_id" json:"-"`
	Street     *string `db:"street" json:"street,omitempty"`
	City       *string `db:"city" json:"city,omitempty"`
	Province   *string `db:"province" json:"province,omitempty"`
	Country    string  `db:"country" json:"country"`
	PostalCode *string `db:"postal_code" json:"postal_code,omitempty"`
}

// AddressRequest is shared by create and update; update applies it with
// full-replace semantics.
type AddressRequest struct {
	Street     string `json:"street" validate:"omitempty,max=200"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"omitempty,max=10"`
}

type AddressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

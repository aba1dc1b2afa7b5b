package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map them
// to HTTP statuses.
var (
	// ErrEmailTaken means a registration used an email that already has
	// an account.
	ErrEmailTaken = errors.New("email already in use")

	// ErrMissingCredentials means a login request omitted the email or
	// the password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Kept deliberately indistinct so login failures do not
	// reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProductNotFound means the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound means the referenced cart line does not exist in
	// the caller's cart.
	ErrItemNotFound = errors.New("cart item not found")

	// ErrWishlistItemNotFound means the product is not on the caller's
	// wishlist.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)

// ValidationErrors carries field-level model validation failures.
// Controllers render it as a 422 with the errors map.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string { return "validation failed" }


package service

import "errors"

var (
	ErrUnauthenticated      = errors.New("missing or invalid identity claim")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrPhoneConflict        = errors.New("a customer with this phone number already exists")
	ErrPermissionNotFound   = errors.New("permission not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrVariantNotFound      = errors.New("product variant not found for this product")
	ErrWishlistConflict     = errors.New("item already in wishlist")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)

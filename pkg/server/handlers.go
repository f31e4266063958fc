package server

import (
	"Backoffice/handler"
)

type Handlers struct {
	Health     *handler.Health
	Customer   *handler.Customer
	Permission *handler.Permission
	Wishlist   *handler.Wishlist
}

package repositories

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrKeyNotFound  = errors.New("activity key not found")
)

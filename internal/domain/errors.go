package domain

import "errors"

var (
	ErrUnknownCode       = errors.New("unknown tool code")
	ErrToolNotFound      = errors.New("tool not found")
	ErrToolExists        = errors.New("tool already exists")
	ErrToolCheckedOut    = errors.New("tool is currently checked out")
	ErrToolNotCheckedOut = errors.New("tool is not checked out")
	ErrInvalidAttribute  = errors.New("invalid attribute value")
)

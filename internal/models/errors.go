package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrExpenseInvalid   = errors.New("the expense is invalid: the amount must be positive and category and description must not be blank")
)

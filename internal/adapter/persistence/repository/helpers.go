package repository

import "errors"

var ErrDraftAlreadyExists = errors.New("quotation draft already exists")

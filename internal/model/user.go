package model

import (
	"github.com/gerow/go-color"
)

type UserCreate struct {
	Username string
	Color    color.RGB
}

type User struct {
	ID int64
	UserCreate
}

package models

import (
	"time"
)

type CreatePropertyRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        Decimal `json:"price"`
	CodeInternal string  `json:"codeInternal"`
	Year         int     `json:"year"`
	IDOwner      string  `json:"idOwner"`
}

type CreateOwnerRequest struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo"`
	Birthday time.Time `json:"birthday"`
}

type CreatePropertyImageRequest struct {
	IDProperty string `json:"idProperty"`
	File       string `json:"file"`
	Enabled    bool   `json:"enabled"`
}

type CreatePropertyTraceRequest struct {
	DateSale   time.Time `json:"dateSale"`
	Name       string    `json:"name"`
	Value      Decimal   `json:"value"`
	Tax        Decimal   `json:"tax"`
	IDProperty string    `json:"idProperty"`
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

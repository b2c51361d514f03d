// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/rentdesk/people-service/internal/types"
)

// PersonPayload is the request body shared by every endpoint that creates or
// edits a person.
type PersonPayload struct {
	NationalID string `json:"dni" validate:"required,min=6,max=8,number"`
	LastName   string `json:"apellido" validate:"required,min=4,max=50,namechars"`
	FirstName  string `json:"nombre" validate:"required,min=4,max=50,namechars"`
	Phone      string `json:"telefono" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

func (p *PersonPayload) ToPerson() *types.Person {
	return &types.Person{
		NationalID: p.NationalID,
		LastName:   p.LastName,
		FirstName:  p.FirstName,
		Phone:      p.Phone,
		Email:      p.Email,
	}
}

// GrantPayload targets an existing person for a role grant.
type GrantPayload struct {
	PersonID int64 `json:"person_id" validate:"required,gt=0"`
}

// NewValidator returns a validator with the name rule registered. Names
// accept letters and spaces only.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("namechars", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && r != ' ' {
				return false
			}
		}
		return true
	})

	return v
}

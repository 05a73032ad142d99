package dtos

import "jobboard/internal/sqlbuilder"

type UserCreationRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=30"`
	Password  string `json:"password" binding:"required,min=5,max=72"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UserUpdateRequest is a PATCH body. Username is not patchable and
// isAdmin is deliberately absent: privilege changes go through the
// admin-only POST /users, never through self-service PATCH.
type UserUpdateRequest struct {
	Password  *string `json:"password" binding:"omitempty,min=5,max=72"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// Payload lists the supplied fields in declaration order. The caller
// replaces the password value with its hash before building SQL.
func (r UserUpdateRequest) Payload() sqlbuilder.UpdatePayload {
	var p sqlbuilder.UpdatePayload
	if r.Password != nil {
		p = append(p, sqlbuilder.Field{Name: "password", Value: *r.Password})
	}
	if r.FirstName != nil {
		p = append(p, sqlbuilder.Field{Name: "firstName", Value: *r.FirstName})
	}
	if r.LastName != nil {
		p = append(p, sqlbuilder.Field{Name: "lastName", Value: *r.LastName})
	}
	if r.Email != nil {
		p = append(p, sqlbuilder.Field{Name: "email", Value: *r.Email})
	}
	return p
}

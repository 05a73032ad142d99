package dtos

import "jobboard/internal/sqlbuilder"

type CompanyCreationRequest struct {
	Handle       string `json:"handle" binding:"required,min=1,max=40"`
	Name         string `json:"name" binding:"required,min=1,max=60"`
	Description  string `json:"description"`
	NumEmployees *int   `json:"numEmployees" binding:"omitempty,min=0"`
	LogoURL      string `json:"logoUrl" binding:"omitempty,url"`
}

// CompanyUpdateRequest is a PATCH body: every field optional, nil means
// "leave untouched". The handle itself is not patchable.
type CompanyUpdateRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=60"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" binding:"omitempty,min=0"`
	LogoURL      *string `json:"logoUrl" binding:"omitempty,url"`
}

// Payload lists the supplied fields in declaration order, which fixes
// the placeholder order of the generated SET clause.
func (r CompanyUpdateRequest) Payload() sqlbuilder.UpdatePayload {
	var p sqlbuilder.UpdatePayload
	if r.Name != nil {
		p = append(p, sqlbuilder.Field{Name: "name", Value: *r.Name})
	}
	if r.Description != nil {
		p = append(p, sqlbuilder.Field{Name: "description", Value: *r.Description})
	}
	if r.NumEmployees != nil {
		p = append(p, sqlbuilder.Field{Name: "numEmployees", Value: *r.NumEmployees})
	}
	if r.LogoURL != nil {
		p = append(p, sqlbuilder.Field{Name: "logoUrl", Value: *r.LogoURL})
	}
	return p
}

// CompanySearchRequest binds the /companies query string. Pointers keep
// "absent" distinct from an explicit 0.
type CompanySearchRequest struct {
	Name         *string `form:"name"`
	MinEmployees *int    `form:"minEmployees"`
	MaxEmployees *int    `form:"maxEmployees"`
}

func (r CompanySearchRequest) Filter() sqlbuilder.CompanyFilter {
	return sqlbuilder.CompanyFilter{
		Name:         r.Name,
		MinEmployees: r.MinEmployees,
		MaxEmployees: r.MaxEmployees,
	}
}

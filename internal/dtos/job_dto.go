package dtos

import "jobboard/internal/sqlbuilder"

type JobCreationRequest struct {
	Title         string   `json:"title" binding:"required"`
	Salary        *int     `json:"salary" binding:"omitempty,min=0"`
	Equity        *float64 `json:"equity" binding:"omitempty,min=0,max=1"`
	CompanyHandle string   `json:"companyHandle" binding:"required"`
}

// JobUpdateRequest is a PATCH body. The job id and company handle are
// not patchable.
type JobUpdateRequest struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary" binding:"omitempty,min=0"`
	Equity *float64 `json:"equity" binding:"omitempty,min=0,max=1"`
}

func (r JobUpdateRequest) Payload() sqlbuilder.UpdatePayload {
	var p sqlbuilder.UpdatePayload
	if r.Title != nil {
		p = append(p, sqlbuilder.Field{Name: "title", Value: *r.Title})
	}
	if r.Salary != nil {
		p = append(p, sqlbuilder.Field{Name: "salary", Value: *r.Salary})
	}
	if r.Equity != nil {
		p = append(p, sqlbuilder.Field{Name: "equity", Value: *r.Equity})
	}
	return p
}

// JobSearchRequest binds the /jobs query string.
type JobSearchRequest struct {
	Title     *string `form:"title"`
	MinSalary *int    `form:"minSalary"`
	HasEquity *bool   `form:"hasEquity"`
}

func (r JobSearchRequest) Filter() sqlbuilder.JobFilter {
	return sqlbuilder.JobFilter{
		Title:     r.Title,
		MinSalary: r.MinSalary,
		HasEquity: r.HasEquity,
	}
}

// JobExtractionRequest carries raw posting text for the LLM extractor.
type JobExtractionRequest struct {
	RawText string `json:"raw_text" binding:"required"`
	URL     string `json:"url"`
}

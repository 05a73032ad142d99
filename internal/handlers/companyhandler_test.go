package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobboard/internal/apperrors"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// fakeCompanyService records the request it received and replies with
// canned data or a canned error.
type fakeCompanyService struct {
	lastSearch dtos.CompanySearchRequest
	lastUpdate dtos.CompanyUpdateRequest
	companies  []models.Company
	err        error
}

func (f *fakeCompanyService) Create(_ context.Context, req dtos.CompanyCreationRequest) (*models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Company{Handle: req.Handle, Name: req.Name}, nil
}

func (f *fakeCompanyService) List(_ context.Context, req dtos.CompanySearchRequest) ([]models.Company, error) {
	f.lastSearch = req
	return f.companies, f.err
}

func (f *fakeCompanyService) Get(_ context.Context, handle string) (*models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Company{Handle: handle}, nil
}

func (f *fakeCompanyService) Update(_ context.Context, handle string, req dtos.CompanyUpdateRequest) (*models.Company, error) {
	f.lastUpdate = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Company{Handle: handle}, nil
}

func (f *fakeCompanyService) Delete(context.Context, string) error { return f.err }

func companyRouter(svc CompanyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCompanyHandler(svc)
	r := gin.New()
	r.GET("/companies", h.ListCompanies)
	r.GET("/companies/:handle", h.GetCompany)
	r.POST("/companies", h.CreateCompany)
	r.PATCH("/companies/:handle", h.UpdateCompany)
	r.DELETE("/companies/:handle", h.DeleteCompany)
	return r
}

func TestListCompanies_QueryBinding(t *testing.T) {
	svc := &fakeCompanyService{companies: []models.Company{{Handle: "acme"}}}
	r := companyRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/companies?name=tech&minEmployees=0&maxEmployees=50", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	got := svc.lastSearch
	if got.Name == nil || *got.Name != "tech" {
		t.Error("name filter not bound")
	}
	if got.MinEmployees == nil || *got.MinEmployees != 0 {
		t.Error("explicit minEmployees=0 not bound as present")
	}
	if got.MaxEmployees == nil || *got.MaxEmployees != 50 {
		t.Error("maxEmployees not bound")
	}
}

func TestListCompanies_NoFilters(t *testing.T) {
	svc := &fakeCompanyService{companies: []models.Company{{Handle: "acme"}}}
	r := companyRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("got %d", w.Code)
	}
	if svc.lastSearch.Name != nil || svc.lastSearch.MinEmployees != nil || svc.lastSearch.MaxEmployees != nil {
		t.Errorf("absent query params bound as present: %+v", svc.lastSearch)
	}
}

func TestListCompanies_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.Validationf("minEmployees cannot be greater than maxEmployees"), http.StatusBadRequest},
		{"not found", apperrors.NotFoundf("no companies matched"), http.StatusNotFound},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := companyRouter(&fakeCompanyService{err: tc.err})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil))
			if w.Code != tc.want {
				t.Errorf("got %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestUpdateCompany_BodyBinding(t *testing.T) {
	svc := &fakeCompanyService{}
	r := companyRouter(svc)

	body := `{"name": "New Name", "numEmployees": 3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/companies/acme", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	got := svc.lastUpdate
	if got.Name == nil || *got.Name != "New Name" {
		t.Error("name not bound")
	}
	if got.NumEmployees == nil || *got.NumEmployees != 3 {
		t.Error("numEmployees not bound")
	}
	if got.Description != nil || got.LogoURL != nil {
		t.Error("absent fields bound as present")
	}
}

func TestCreateCompany_InvalidBody(t *testing.T) {
	r := companyRouter(&fakeCompanyService{})

	// handle and name are required.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{"description": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}

func TestDeleteCompany_NotFound(t *testing.T) {
	r := companyRouter(&fakeCompanyService{err: apperrors.NotFoundf("no company: nope")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/companies/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", w.Code)
	}
}

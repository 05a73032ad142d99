package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type JobService interface {
	Create(ctx context.Context, req dtos.JobCreationRequest) (*models.Job, error)
	List(ctx context.Context, req dtos.JobSearchRequest) ([]models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Update(ctx context.Context, id int64, req dtos.JobUpdateRequest) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
}

type JobExtractor interface {
	ExtractJobDetails(ctx context.Context, rawText string) (string, error)
}

type JobHandler struct {
	Service   JobService
	Extractor JobExtractor
}

// NewJobHandler creates the handler with dependencies. extractor may be
// nil; the route is only mounted when extraction is configured.
func NewJobHandler(s JobService, extractor JobExtractor) *JobHandler {
	return &JobHandler{Service: s, Extractor: extractor}
}

func jobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job id must be an integer"})
		return 0, false
	}
	return id, true
}

// CreateJob is the POST /jobs endpoint (admin only).
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// ListJobs is the GET /jobs endpoint. Filters: title, minSalary,
// hasEquity.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dtos.JobSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query string: " + err.Error()})
		return
	}
	jobs, err := h.Service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob is the GET /jobs/:id endpoint.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// UpdateJob is the PATCH /jobs/:id endpoint (admin only).
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// DeleteJob is the DELETE /jobs/:id endpoint (admin only).
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ExtractJob is the POST /jobs/extract endpoint (admin only). It feeds
// raw posting text to the LLM and returns its JSON verbatim, using
// json.RawMessage so the inner JSON is not re-escaped.
func (h *JobHandler) ExtractJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	extracted, err := h.Extractor.ExtractJobDetails(c.Request.Context(), req.RawText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "extraction failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extracted),
	})
}

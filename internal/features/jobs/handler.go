package jobs

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joborbit/backend/internal/pkg/response"
)

// Store is the slice of the repository the handlers need.
type Store interface {
	List(ctx context.Context, q ListQuery) ([]Job, error)
	ListByBuyer(ctx context.Context, email string) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, job *Job) error
	Upsert(ctx context.Context, id string, req JobRequest) (*UpdateOutcome, error)
	Delete(ctx context.Context, id string) (*DeleteOutcome, error)
}

type Handler struct {
	repo Store
}

func NewHandler(repo Store) *Handler {
	return &Handler{repo: repo}
}

// ListAll godoc
// @Summary List every job
// @Tags jobs
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /jobs [get]
func (h *Handler) ListAll(c *gin.Context) {
	jobs, err := h.repo.List(c.Request.Context(), ListQuery{})
	if err != nil {
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, jobs)
}

// Search godoc
// @Summary List jobs with optional filter, search and sort
// @Description filter is an exact category match, search a case-insensitive substring on title, sort orders by deadline
// @Tags jobs
// @Produce json
// @Param filter query string false "Category"
// @Param search query string false "Title substring"
// @Param sort query string false "asc or desc by deadline"
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /all-jobs [get]
func (h *Handler) Search(c *gin.Context) {
	q := ListQuery{
		Filter: c.Query("filter"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	jobs, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, jobs)
}

// ListByBuyer godoc
// @Summary List jobs posted by a buyer
// @Tags jobs
// @Produce json
// @Param email path string true "Buyer email"
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /jobs/{email} [get]
func (h *Handler) ListByBuyer(c *gin.Context) {
	jobs, err := h.repo.ListByBuyer(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, jobs)
}

// Get godoc
// @Summary Get a single job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /job/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	job, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInvalidJobID) {
			response.BadRequest(c, err.Error())
			return
		}
		response.DatabaseError(c, err)
		return
	}

	if job == nil {
		response.NotFound(c, "Job not found")
		return
	}

	response.Success(c, job)
}

// Create godoc
// @Summary Post a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body JobRequest true "Job fields"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /add-jobs [post]
func (h *Handler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateJobRequest(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job := &Job{
		Title:       req.Title,
		Category:    req.Category,
		Deadline:    req.Deadline,
		Description: req.Description,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Buyer:       req.Buyer,
	}

	if err := h.repo.Create(c.Request.Context(), job); err != nil {
		response.DatabaseError(c, err)
		return
	}

	response.Created(c, job)
}

// Update godoc
// @Summary Replace a job, creating it when the id is unknown
// @Description Upsert semantics: updating a nonexistent id creates a new document with that id
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body JobRequest true "Job fields"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /update-job/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateJobRequest(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outcome, err := h.repo.Upsert(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidJobID) {
			response.BadRequest(c, err.Error())
			return
		}
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, outcome)
}

// Delete godoc
// @Summary Delete a job
// @Description Idempotent: deleting an unknown id reports deletedCount 0
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /job/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	outcome, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInvalidJobID) {
			response.BadRequest(c, err.Error())
			return
		}
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, outcome)
}

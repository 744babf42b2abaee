package bids

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joborbit/backend/internal/pkg/response"
	"github.com/joborbit/backend/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Place godoc
// @Summary Place a bid on a job
// @Description At most one bid per (email, job). Placing a bid increments the job's bid_count.
// @Tags bids
// @Accept json
// @Produce json
// @Param request body PlaceBidRequest true "Bid fields"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /add-bidJob [post]
func (h *Handler) Place(c *gin.Context) {
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if !validator.IsValidEmail(req.Email) {
		response.BadRequest(c, "Invalid email address")
		return
	}
	if !validator.IsValidObjectID(req.JobID) {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	bid := &Bid{
		Email:    req.Email,
		JobID:    req.JobID,
		Buyer:    req.Buyer,
		Title:    req.Title,
		Category: req.Category,
		Price:    req.Price,
		Comment:  req.Comment,
		Deadline: req.Deadline,
		Status:   req.Status,
	}
	if bid.Status == "" {
		bid.Status = "pending"
	}

	if err := h.service.PlaceBid(c.Request.Context(), bid); err != nil {
		if errors.Is(err, ErrDuplicateBid) {
			response.BadRequest(c, ErrDuplicateBid.Error())
			return
		}
		response.DatabaseError(c, err)
		return
	}

	response.Created(c, bid)
}

// ListForUser godoc
// @Summary List bids for the authenticated user
// @Description Returns bids placed by the user, or bids received on their jobs when buyer= is present. The path email must match the token identity.
// @Tags bids
// @Produce json
// @Param email path string true "User email"
// @Param buyer query string false "Any value switches to bids received"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /bid-jobs/{email} [get]
func (h *Handler) ListForUser(c *gin.Context) {
	email := c.Param("email")
	asBuyer := c.Query("buyer") != ""

	bids, err := h.service.ListForUser(c.Request.Context(), email, asBuyer)
	if err != nil {
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, bids)
}

// UpdateStatus godoc
// @Summary Update a bid's status
// @Tags bids
// @Accept json
// @Produce json
// @Param id path string true "Bid ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /bid-status-update/{id} [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	outcome, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidBidID) {
			response.BadRequest(c, err.Error())
			return
		}
		response.DatabaseError(c, err)
		return
	}

	response.Success(c, outcome)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/pkg/response"
	"github.com/linskybing/litreview-go/pkg/utils"
)

type ReviewHandler struct {
	svc   *application.ReviewService
	audit repository.AuditRepo
}

func NewReviewHandler(svc *application.ReviewService, audit repository.AuditRepo) *ReviewHandler {
	return &ReviewHandler{svc: svc, audit: audit}
}

// CreateReview godoc
// @Summary Review an existing ticket
// @Tags reviews
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param input body review.CreateReviewInput true "Review"
// @Success 201 {object} review.Review
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	ticketID, ok := parseID(c)
	if !ok {
		return
	}
	var input review.CreateReviewInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}

	rv, err := h.svc.CreateReview(uid, ticketID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionCreate, "review", formatID(rv.ID), nil, rv, "created review", h.audit)
	c.JSON(http.StatusCreated, rv)
}

// GetReview godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} review.Review
// @Failure 404 {object} response.ErrorResponse "Review not found"
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rv, err := h.svc.GetReview(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

// UpdateReview godoc
// @Summary Edit a review
// @Tags reviews
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param input body review.UpdateReviewInput true "Fields to change"
// @Success 200 {object} review.Review
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Review not found"
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input review.UpdateReviewInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}

	rv, err := h.svc.UpdateReview(uid, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionUpdate, "review", formatID(rv.ID), input, rv, "updated review", h.audit)
	c.JSON(http.StatusOK, rv)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Review not found"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	rv, err := h.svc.DeleteReview(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionDelete, "review", formatID(rv.ID), rv, nil, "deleted review", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Review deleted"})
}

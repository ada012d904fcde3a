package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/review"
	"github.com/linskybing/litreview-go/internal/domain/ticket"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/pkg/response"
	"github.com/linskybing/litreview-go/pkg/utils"
)

const ticketImageField = "image"

type TicketHandler struct {
	svc   *application.TicketService
	audit repository.AuditRepo
}

func NewTicketHandler(svc *application.TicketService, audit repository.AuditRepo) *TicketHandler {
	return &TicketHandler{svc: svc, audit: audit}
}

// ticketWithReviewResponse is returned by the combined create.
type ticketWithReviewResponse struct {
	Ticket ticket.Ticket `json:"ticket"`
	Review review.Review `json:"review"`
}

// imageFromForm returns the optional uploaded image. The caller runs the
// returned close func once the upload has been consumed.
func imageFromForm(c *gin.Context) (*application.ImageUpload, func(), error) {
	noop := func() {}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}

	fh, err := c.FormFile(ticketImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	upload := &application.ImageUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Reader:   f,
	}
	return upload, func() { _ = f.Close() }, nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// CreateTicket godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept multipart/form-data,json
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param image formData file false "Cover image"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var input ticket.CreateTicketInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	image, closeImage, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid image upload"})
		return
	}
	defer closeImage()

	t, err := h.svc.CreateTicket(c.Request.Context(), uid, input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionCreate, "ticket", formatID(t.ID), nil, t, "created ticket", h.audit)
	c.JSON(http.StatusCreated, t)
}

// CreateTicketWithReview godoc
// @Summary Create a ticket and review it in one step
// @Description Either both records are stored or neither is.
// @Tags tickets
// @Accept multipart/form-data,json
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param headline formData string true "Review headline"
// @Param rating formData int true "Rating 0-5"
// @Param body formData string false "Review body"
// @Param image formData file false "Cover image"
// @Success 201 {object} ticketWithReviewResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /tickets/with-review [post]
func (h *TicketHandler) CreateTicketWithReview(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var input review.CreateTicketWithReviewInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	image, closeImage, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid image upload"})
		return
	}
	defer closeImage()

	t, rv, err := h.svc.CreateTicketWithReview(c.Request.Context(), uid, input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionCreate, "ticket", formatID(t.ID), nil, t, "created ticket with review", h.audit)
	utils.LogAuditWithConsole(c, utils.AuditActionCreate, "review", formatID(rv.ID), nil, rv, "created review", h.audit)
	c.JSON(http.StatusCreated, ticketWithReviewResponse{Ticket: t, Review: rv})
}

// GetTicket godoc
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetTicket(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTicket godoc
// @Summary Edit a ticket
// @Description Only the owner may edit. A new image replaces the old one.
// @Tags tickets
// @Accept multipart/form-data,json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param remove_image formData bool false "Drop the current image"
// @Param image formData file false "Replacement image"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input ticket.UpdateTicketInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	image, closeImage, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid image upload"})
		return
	}
	defer closeImage()

	t, err := h.svc.UpdateTicket(c.Request.Context(), uid, id, input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionUpdate, "ticket", formatID(t.ID), input, t, "updated ticket", h.audit)
	c.JSON(http.StatusOK, t)
}

// DeleteTicket godoc
// @Summary Delete a ticket and its reviews
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.svc.DeleteTicket(c.Request.Context(), uid, id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionDelete, "ticket", formatID(t.ID), t, nil, "deleted ticket", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Ticket deleted"})
}

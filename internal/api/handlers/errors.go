package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/pkg/response"
	"github.com/linskybing/litreview-go/pkg/utils"
)

var fieldLabels = map[string]string{
	"Username":    "username",
	"Password":    "password",
	"Title":       "title",
	"Description": "description",
	"Headline":    "headline",
	"Rating":      "rating",
	"Body":        "body",
}

// bindingMessage turns validator output into a sentence the frontend can show.
func bindingMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			if field == "Rating" {
				msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
			} else {
				msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
			}
		case "max":
			if field == "Rating" {
				msg = fmt.Sprintf("%s must be at most %s", lbl, fe.Param())
			} else {
				msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
			}
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err)})
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var fe *social.FollowError
	var ve *application.ValidationError

	switch {
	case errors.As(err, &fe):
		status := http.StatusConflict
		if fe.Code == social.CodeUserNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, response.FollowErrorResponse{Code: string(fe.Code), Error: fe.Message})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: ve.Error()})
	case errors.Is(err, application.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrTicketNotFound),
		errors.Is(err, application.ErrReviewNotFound),
		errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrImageNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return 0, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (uint, bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	return uid, true
}

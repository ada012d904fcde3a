package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/social"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/pkg/response"
	"github.com/linskybing/litreview-go/pkg/utils"
)

type SocialHandler struct {
	svc   *application.SocialService
	audit repository.AuditRepo
}

func NewSocialHandler(svc *application.SocialService, audit repository.AuditRepo) *SocialHandler {
	return &SocialHandler{svc: svc, audit: audit}
}

// ListSubscriptions godoc
// @Summary Users I follow and users following me
// @Tags social
// @Produce json
// @Security BearerAuth
// @Success 200 {object} social.SubscriptionsDTO
// @Router /subscriptions [get]
func (h *SocialHandler) ListSubscriptions(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	following, err := h.svc.ListFollowing(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	followers, err := h.svc.ListFollowers(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, social.SubscriptionsDTO{
		Following: user.ToDTOs(following),
		Followers: user.ToDTOs(followers),
	})
}

// Follow godoc
// @Summary Follow a user by username
// @Tags social
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param input body social.FollowInput true "User to follow"
// @Success 201 {object} social.Follow
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.FollowErrorResponse "Unknown user"
// @Failure 409 {object} response.FollowErrorResponse "Follow refused"
// @Router /subscriptions [post]
func (h *SocialHandler) Follow(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var input social.FollowInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}

	f, err := h.svc.RequestFollow(uid, input.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionFollow, "user", strconv.FormatUint(uint64(f.FollowedID), 10), nil, f, "followed "+input.Username, h.audit)
	c.JSON(http.StatusCreated, f)
}

// Unfollow godoc
// @Summary Stop following a user
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Router /subscriptions/{id} [delete]
func (h *SocialHandler) Unfollow(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	target, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Unfollow(uid, target); err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionUnfollow, "user", c.Param("id"), nil, nil, "unfollowed user", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Unfollowed"})
}

// ListBlocked godoc
// @Summary Users I blocked
// @Tags social
// @Produce json
// @Security BearerAuth
// @Success 200 {array} user.UserDTO
// @Router /blocks [get]
func (h *SocialHandler) ListBlocked(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	blocked, err := h.svc.ListBlocked(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTOs(blocked))
}

// Block godoc
// @Summary Block a user
// @Description Removes follows in both directions. Blocking yourself does nothing.
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.FollowErrorResponse "Unknown user"
// @Router /blocks/{id} [post]
func (h *SocialHandler) Block(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	target, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Block(uid, target); err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionBlock, "user", c.Param("id"), nil, nil, "blocked user", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Blocked"})
}

// Unblock godoc
// @Summary Unblock a user
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Router /blocks/{id} [delete]
func (h *SocialHandler) Unblock(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	target, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Unblock(uid, target); err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, utils.AuditActionUnblock, "user", c.Param("id"), nil, nil, "unblocked user", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Unblocked"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/application"
)

type FeedHandler struct {
	svc *application.FeedService
}

func NewFeedHandler(svc *application.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// MainFeed godoc
// @Summary Main feed
// @Description Own posts, posts of followed users and replies to own tickets, newest first.
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} feed.Feed
// @Failure 401 {object} response.ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) MainFeed(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	f, err := h.svc.BuildMainFeed(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// OwnPosts godoc
// @Summary Own posts
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} feed.Feed
// @Failure 401 {object} response.ErrorResponse
// @Router /posts [get]
func (h *FeedHandler) OwnPosts(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	f, err := h.svc.BuildOwnPostsFeed(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

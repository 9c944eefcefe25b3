package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeworks/impact_hub/src/internal/application/hopewall"
	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

// ===========================
// Hope wall handlers
// ===========================

type WallHandler struct {
	list hopewall.ListWallUseCase
	post hopewall.PostMessageUseCase
}

func NewWallHandler(list hopewall.ListWallUseCase, post hopewall.PostMessageUseCase) *WallHandler {
	return &WallHandler{list: list, post: post}
}

// List GET /hope_wall/messages
func (h *WallHandler) List(c *gin.Context) {
	messages, err := h.list.Execute()
	if err != nil {
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": toWallMessagePayloads(messages)})
}

// Post POST /hope_wall/messages
func (h *WallHandler) Post(c *gin.Context) {
	var req PostWallMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "message is required")
		return
	}

	_, err := h.post.Execute(hopewall.PostMessageCommand{
		DisplayName: req.DisplayName,
		Text:        req.Message,
		Language:    req.Language,
	})
	switch {
	case err == nil:
	case errors.Is(err, wall.ErrEmptyMessage), errors.Is(err, wall.ErrMessageTooLong):
		respondBadRequest(c, err.Error())
		return
	default:
		respondInternal(c)
		return
	}

	respondOK(c, "Thank you for your message of support", nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
	"bluepenguin/services/helpers"
	"bluepenguin/utils"
)

// PostCommentHandler handles POST /api/items/:item_id/comments
func (h *MarketHandler) PostCommentHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "PostCommentHandler")
	if !ok {
		return
	}
	var req api.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostCommentHandler", err)
		return
	}

	itemID := c.Param("item_id")
	comment, err := h.service.PostComment(c.Request.Context(), session.ProfileID, itemID, req.Text, req.ParentID)
	if err != nil {
		helpers.RespondError(c, "PostCommentHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, comment, "comment posted successfully")
	helpers.LogSuccess("PostCommentHandler", "comment posted successfully", map[string]any{
		"item_id":    itemID,
		"comment_id": comment.CommentID,
	})
}

// ListCommentsHandler handles GET /api/items/:item_id/comments
func (h *MarketHandler) ListCommentsHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	comments, err := h.service.ListComments(c.Request.Context(), itemID)
	if err != nil {
		helpers.RespondError(c, "ListCommentsHandler", err, map[string]any{"item_id": itemID})
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	utils.JSONResponse(c, http.StatusOK, comments, "comments retrieved successfully")
}

// ListRepliesHandler handles GET /api/items/:item_id/comments/:comment_id/replies
func (h *MarketHandler) ListRepliesHandler(c *gin.Context) {
	commentID := c.Param("comment_id")
	replies, err := h.service.ListReplies(c.Request.Context(), commentID)
	if err != nil {
		helpers.RespondError(c, "ListRepliesHandler", err, map[string]any{"comment_id": commentID})
		return
	}
	if replies == nil {
		replies = []models.Comment{}
	}
	utils.JSONResponse(c, http.StatusOK, replies, "replies retrieved successfully")
}

// DeleteCommentHandler handles DELETE /api/items/:item_id/comments/:comment_id
func (h *MarketHandler) DeleteCommentHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "DeleteCommentHandler")
	if !ok {
		return
	}
	commentID := c.Param("comment_id")
	if err := h.service.DeleteComment(c.Request.Context(), session.ProfileID, commentID); err != nil {
		helpers.RespondError(c, "DeleteCommentHandler", err, map[string]any{"comment_id": commentID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"comment_id": commentID}, "comment deleted successfully")
}

// ReactHandler handles POST /api/items/:item_id/comments/:comment_id/reactions
func (h *MarketHandler) ReactHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "ReactHandler")
	if !ok {
		return
	}
	var req api.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReactHandler", err)
		return
	}

	commentID := c.Param("comment_id")
	comment, err := h.service.React(c.Request.Context(), session.ProfileID, commentID, models.ReactionKind(req.Kind))
	if err != nil {
		helpers.RespondError(c, "ReactHandler", err, map[string]any{"comment_id": commentID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, comment, "reaction recorded successfully")
}

// SaveItemHandler handles POST /api/accounts/me/saved-items/:item_id
func (h *MarketHandler) SaveItemHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "SaveItemHandler")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if err := h.service.SaveItem(c.Request.Context(), session.ProfileID, itemID); err != nil {
		helpers.RespondError(c, "SaveItemHandler", err, map[string]any{"item_id": itemID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID}, "item saved successfully")
}

// ListSavedItemsHandler handles GET /api/accounts/me/saved-items
func (h *MarketHandler) ListSavedItemsHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "ListSavedItemsHandler")
	if !ok {
		return
	}
	items, err := h.service.ListSavedItems(c.Request.Context(), session.ProfileID)
	if err != nil {
		helpers.RespondError(c, "ListSavedItemsHandler", err, nil)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "saved items retrieved successfully")
}

// DeleteSavedItemHandler handles DELETE /api/accounts/me/saved-items/:item_id
func (h *MarketHandler) DeleteSavedItemHandler(c *gin.Context) {
	session, ok := helpers.CurrentSession(c, "DeleteSavedItemHandler")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if err := h.service.DeleteSavedItem(c.Request.Context(), session.ProfileID, itemID); err != nil {
		helpers.RespondError(c, "DeleteSavedItemHandler", err, map[string]any{"item_id": itemID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID}, "saved item removed successfully")
}

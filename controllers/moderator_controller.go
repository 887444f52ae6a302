package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"agorahub/internal/debate"
	"agorahub/websocket"

	"github.com/gin-gonic/gin"
)

// ModeratorController exposes the moderator operations over HTTP: debate
// lifecycle, question publication and suggestion approval.
type ModeratorController struct {
	manager *debate.Manager
	hub     *websocket.Hub
}

// NewModeratorController wires the controller to the debate registry and the
// websocket hub.
func NewModeratorController(manager *debate.Manager, hub *websocket.Hub) *ModeratorController {
	return &ModeratorController{manager: manager, hub: hub}
}

// CreateDebateHandler handles the POST request for a new debate.
func (mc *ModeratorController) CreateDebateHandler(c *gin.Context) {
	var request struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	d := mc.manager.Create(request.Title, request.Description)
	c.JSON(http.StatusCreated, d.Details())
}

// ListDebatesHandler returns the details of every active debate.
func (mc *ModeratorController) ListDebatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, mc.manager.List())
}

// RemoveDebateHandler tears a debate down. Removing an absent debate is a
// no-op, so the handler always answers 204.
func (mc *ModeratorController) RemoveDebateHandler(c *gin.Context) {
	debateID := c.Param("debateID")
	mc.manager.Remove(debateID)
	mc.hub.CloseRoom(debateID)
	c.Status(http.StatusNoContent)
}

// PublishQuestionHandler publishes a new question into a debate and
// broadcasts it to the room.
func (mc *ModeratorController) PublishQuestionHandler(c *gin.Context) {
	d, err := mc.manager.Get(c.Param("debateID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "debate not found"})
		return
	}

	var request struct {
		Title          string   `json:"title" binding:"required"`
		Answers        []string `json:"answers"`
		IsOpenQuestion bool     `json:"isOpenQuestion"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	summary, err := d.PublishQuestion(request.Title, request.Answers, request.IsOpenQuestion)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// ApproveSuggestionHandler promotes a suggestion into a new open question.
func (mc *ModeratorController) ApproveSuggestionHandler(c *gin.Context) {
	d, err := mc.manager.Get(c.Param("debateID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "debate not found"})
		return
	}

	suggestionID, err := strconv.Atoi(c.Param("suggestionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid suggestion id"})
		return
	}

	summary, err := d.ApproveSuggestion(suggestionID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// ListSuggestionsHandler returns a debate's suggestions in submission order.
func (mc *ModeratorController) ListSuggestionsHandler(c *gin.Context) {
	d, err := mc.manager.Get(c.Param("debateID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "debate not found"})
		return
	}
	c.JSON(http.StatusOK, d.Suggestions())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, debate.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, debate.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

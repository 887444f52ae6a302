package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"agorahub/internal/debate"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ReactionPolicy caps how often one identity may send reactions in a debate.
type ReactionPolicy struct {
	MaxReactions int
	Window       time.Duration
}

// DefaultReactionPolicy allows 5 reactions per 10 seconds.
func DefaultReactionPolicy() ReactionPolicy {
	return ReactionPolicy{MaxReactions: 5, Window: 10 * time.Second}
}

// Handler terminates participant websocket connections and maps inbound
// messages onto the session core. Every core failure, whatever its cause,
// acks as false; nothing tears the connection down.
type Handler struct {
	hub       *Hub
	manager   *debate.Manager
	reactions ReactionPolicy

	// Reaction limiters are keyed by debate and identity, not by
	// connection, so opening more tabs never buys a fresh burst.
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewHandler wires the hub and the debate registry together.
func NewHandler(hub *Hub, manager *debate.Manager, reactions ReactionPolicy) *Handler {
	if reactions.MaxReactions <= 0 || reactions.Window <= 0 {
		reactions = DefaultReactionPolicy()
	}
	return &Handler{
		hub:       hub,
		manager:   manager,
		reactions: reactions,
		limiters:  make(map[string]*rate.Limiter),
	}
}

// limiterFor returns the shared reaction limiter for an identity within a
// debate, creating it on first use.
func (h *Handler) limiterFor(debateID string, identity debate.Identity) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := debateID + ":" + string(identity)
	limiter, ok := h.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(h.reactions.Window/time.Duration(h.reactions.MaxReactions)), h.reactions.MaxReactions)
		h.limiters[key] = limiter
	}
	return limiter
}

// Serve upgrades the connection and attaches the participant to the debate
// named in the path. The identity token comes from the uuid query parameter.
func (h *Handler) Serve(c *gin.Context) {
	debateID := c.Param("debateID")
	d, err := h.manager.Get(debateID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "debate not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	identity := identityFromToken(c.Query("uuid"))
	d.Attach(identity)

	client := newClient(conn, identity, debateID, h.limiterFor(debateID, identity))
	h.hub.Register(debateID, conn, client)
	go client.writePump()
	defer func() {
		h.hub.Unregister(debateID, conn)
		client.shutdown()
	}()

	h.readPump(client, d)
}

// readPump dispatches inbound messages until the connection closes.
func (h *Handler) readPump(client *Client, d *debate.Debate) {
	for {
		_, messageBytes, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read failed: %v", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			continue
		}

		client.enqueue(ackMessage{
			Type:   "ack",
			ID:     msg.ID,
			Result: h.handleMessage(client, d, msg),
		})
	}
}

// handleMessage runs one operation against the core and returns the ack
// result. Failures collapse to false per the response contract.
func (h *Handler) handleMessage(client *Client, d *debate.Debate, msg clientMessage) interface{} {
	switch msg.Type {
	case "getDebateDetails":
		return d.Details()

	case "getQuestions":
		return d.Questions()

	case "answerQuestion":
		var payload answerQuestionPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return false
		}
		if err := d.AnswerClosed(client.identity, *payload.QuestionID, *payload.AnswerID); err != nil {
			return false
		}
		return true

	case "answerOpenQuestion":
		var payload answerOpenQuestionPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return false
		}
		if err := d.AnswerOpen(client.identity, *payload.QuestionID, *payload.Answer); err != nil {
			return false
		}
		return true

	case "getSuggestedQuestions":
		return d.Suggestions()

	case "suggestQuestion":
		var payload suggestQuestionPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return false
		}
		id, err := d.SuggestQuestion(client.identity, *payload.Suggestion)
		if err != nil {
			return false
		}
		return id

	case "voteSuggestedQuestion":
		var payload voteSuggestedQuestionPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return false
		}
		if err := d.VoteSuggestion(client.identity, *payload.SuggestionID); err != nil {
			return false
		}
		return true

	case "reaction":
		var payload reactionPayload
		if err := decodePayload(msg.Payload, &payload); err != nil {
			return false
		}
		if !client.reactions.Allow() {
			return false
		}
		d.Broadcast(debate.EventReaction, debate.ReactionPayload{
			Reaction:  *payload.Reaction,
			Timestamp: time.Now().Unix(),
		})
		return true

	default:
		return false
	}
}

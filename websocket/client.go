package websocket

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"agorahub/internal/debate"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// writeWait bounds how long one frame may take before the peer is considered
// gone.
const writeWait = 10 * time.Second

// sendBuffer is the per-client outbound queue length. A client that falls
// this far behind has stopped reading and gets dropped.
const sendBuffer = 64

// Client is one connected participant. All outbound traffic goes through the
// send queue and a single writer goroutine, so a peer with a full TCP buffer
// can never block the debate that emits a broadcast.
type Client struct {
	conn     *websocket.Conn
	identity debate.Identity
	debateID string

	send      chan interface{}
	done      chan struct{}
	closeOnce sync.Once

	reactions *rate.Limiter
}

func newClient(conn *websocket.Conn, identity debate.Identity, debateID string, reactions *rate.Limiter) *Client {
	return &Client{
		conn:      conn,
		identity:  identity,
		debateID:  debateID,
		send:      make(chan interface{}, sendBuffer),
		done:      make(chan struct{}),
		reactions: reactions,
	}
}

// enqueue hands a message to the writer goroutine. It never blocks: a full
// queue or a shut-down client reports false and the caller decides what to
// do with the connection.
func (c *Client) enqueue(message interface{}) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// writePump drains the send queue onto the connection. Each write carries a
// deadline so a stalled peer cannot park the writer forever.
func (c *Client) writePump() {
	defer c.conn.Close()
	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}
		}
	}
}

// shutdown stops the writer, which closes the connection. Safe to call more
// than once.
func (c *Client) shutdown() {
	c.closeOnce.Do(func() { close(c.done) })
}

// identityFromToken hashes the client-supplied token into the dedup key the
// core works with. A client that supplies no token gets an ephemeral one, so
// it can still answer and vote, just not resume as the same identity later.
func identityFromToken(token string) debate.Identity {
	if token == "" {
		token = uuid.NewString()
	}
	sum := sha256.Sum256([]byte(token))
	return debate.Identity(hex.EncodeToString(sum[:]))
}

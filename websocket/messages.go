package websocket

import (
	"encoding/json"

	"agorahub/internal/debate"

	"github.com/go-playground/validator/v10"
)

// clientMessage is the envelope for every inbound participant message. The id
// is chosen by the client and echoed back on the ack so requests and
// responses can be matched up.
type clientMessage struct {
	Type    string          `json:"type"`
	ID      int64           `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// ackMessage answers one clientMessage. Result is either the operation's
// value (details, lists, a suggestion id, true) or false on any failure.
type ackMessage struct {
	Type   string      `json:"type"`
	ID     int64       `json:"id"`
	Result interface{} `json:"result"`
}

// Inbound payloads use pointer fields so a missing field is distinguishable
// from a zero value; validation runs before any core call, so a malformed
// payload never mutates state.

type answerQuestionPayload struct {
	QuestionID *int `json:"questionId" validate:"required"`
	AnswerID   *int `json:"answerId" validate:"required"`
}

type answerOpenQuestionPayload struct {
	QuestionID *int    `json:"questionId" validate:"required"`
	Answer     *string `json:"answer" validate:"required,min=1,max=500"`
}

type suggestQuestionPayload struct {
	Suggestion *string `json:"suggestion" validate:"required"`
}

type voteSuggestedQuestionPayload struct {
	SuggestionID *int `json:"suggestionId" validate:"required"`
}

type reactionPayload struct {
	Reaction *string `json:"reaction" validate:"required,min=1,max=32"`
}

var validate = validator.New()

// decodePayload unmarshals and validates an inbound payload in one atomic
// step. Anything that fails shape validation reports ErrInvalid.
func decodePayload(data []byte, v interface{}) error {
	if len(data) == 0 {
		return debate.ErrInvalid
	}
	if err := json.Unmarshal(data, v); err != nil {
		return debate.ErrInvalid
	}
	if err := validate.Struct(v); err != nil {
		return debate.ErrInvalid
	}
	return nil
}

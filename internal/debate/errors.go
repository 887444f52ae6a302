package debate

import "errors"

// Failure taxonomy for the session core. The transport layer maps every one
// of these to a plain false ack; none of them ever terminates a connection
// or a debate.
var (
	// ErrNotFound reports an unknown debate, question or suggestion id. A
	// torn-down debate is indistinguishable from one that never existed.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate reports that the identity already answered, voted or
	// approved the target.
	ErrDuplicate = errors.New("already recorded for this identity")

	// ErrQuotaExceeded reports that the identity used up its suggestion
	// submissions for this debate.
	ErrQuotaExceeded = errors.New("suggestion quota exhausted")

	// ErrInvalid reports a malformed request: wrong question kind, index out
	// of range, missing fields, empty text.
	ErrInvalid = errors.New("invalid request")

	// ErrRejected reports a content policy rejection (profanity, length).
	ErrRejected = errors.New("rejected by content policy")
)

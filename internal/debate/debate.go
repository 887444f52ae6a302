package debate

import "sync"

// Limits are the per-debate anti-abuse tunables.
type Limits struct {
	// MaxSuggestions is the number of suggestions one identity may submit.
	MaxSuggestions int
	// MaxSuggestionLength is the longest accepted suggestion text, in bytes.
	MaxSuggestionLength int
}

// DefaultLimits returns the limits used when the config leaves them unset.
func DefaultLimits() Limits {
	return Limits{
		MaxSuggestions:      3,
		MaxSuggestionLength: 200,
	}
}

// Debate is one live session: an append-only ordered list of questions, a
// suggestion book, and the set of identities that have attached. All
// state-mutating operations are serialized by one mutex per debate, so
// operations on different debates never contend. Broadcasts go out after the
// mutation committed, while the lock is still held, which keeps event order
// equal to creation order.
type Debate struct {
	ID          string
	Title       string
	Description string

	mu             sync.Mutex
	nextQuestionID int
	questions      []*Question
	questionsByID  map[int]*Question
	book           *SuggestionBook
	participants   *IdentitySet
	publisher      Publisher
}

// Details is the wire form of a debate's descriptive fields.
type Details struct {
	DebateID    string `json:"debateId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func newDebate(id, title, description string, limits Limits, oracle ProfanityOracle, publisher Publisher) *Debate {
	return &Debate{
		ID:             id,
		Title:          title,
		Description:    description,
		nextQuestionID: 1,
		questionsByID:  make(map[int]*Question),
		book:           newSuggestionBook(limits.MaxSuggestions, limits.MaxSuggestionLength, oracle),
		participants:   NewIdentitySet(),
		publisher:      publisher,
	}
}

// Attach records a participant. Attaching the same identity twice is a no-op.
func (d *Debate) Attach(identity Identity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.participants.AddOnce(identity)
}

// ParticipantCount returns the number of identities that have attached.
func (d *Debate) ParticipantCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.participants.Len()
}

// Details returns the debate's id, title and description.
func (d *Debate) Details() Details {
	return Details{DebateID: d.ID, Title: d.Title, Description: d.Description}
}

// PublishQuestion appends a new question and broadcasts it to the room.
// Closed questions need at least one option; open questions none.
func (d *Debate) PublishQuestion(title string, options []string, open bool) (QuestionSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.publishQuestionLocked(title, options, open)
}

func (d *Debate) publishQuestionLocked(title string, options []string, open bool) (QuestionSummary, error) {
	if title == "" {
		return QuestionSummary{}, ErrInvalid
	}
	if open && len(options) > 0 {
		return QuestionSummary{}, ErrInvalid
	}
	if !open && len(options) == 0 {
		return QuestionSummary{}, ErrInvalid
	}

	q := newQuestion(d.nextQuestionID, title, options, open)
	d.nextQuestionID++
	d.questions = append(d.questions, q)
	d.questionsByID[q.ID] = q

	summary := q.Summary()
	d.publishLocked(EventNewQuestion, summary)
	return summary, nil
}

// Questions returns summaries of all questions in publication order. Answers
// are never included.
func (d *Debate) Questions() []QuestionSummary {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]QuestionSummary, 0, len(d.questions))
	for _, q := range d.questions {
		out = append(out, q.Summary())
	}
	return out
}

// Question returns the question with the given id.
func (d *Debate) Question(questionID int) (*Question, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	q, ok := d.questionsByID[questionID]
	return q, ok
}

// AnswerClosed records an option choice on a closed question.
func (d *Debate) AnswerClosed(identity Identity, questionID, optionIndex int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	q, ok := d.questionsByID[questionID]
	if !ok {
		return ErrNotFound
	}
	return q.AnswerClosed(identity, optionIndex)
}

// AnswerOpen records a free-text answer on an open question.
func (d *Debate) AnswerOpen(identity Identity, questionID int, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	q, ok := d.questionsByID[questionID]
	if !ok {
		return ErrNotFound
	}
	return q.AnswerOpen(identity, text)
}

// SuggestQuestion submits a follow-up question suggestion and broadcasts it
// with its initial vote count of one.
func (d *Debate) SuggestQuestion(identity Identity, text string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, err := d.book.Submit(identity, text)
	if err != nil {
		return 0, err
	}

	s, _ := d.book.Get(id)
	d.publishLocked(EventSuggestedQuestion, SuggestionSummary{
		SuggestionID: s.ID,
		Suggestion:   s.Text,
		Votes:        s.VoteCount(),
	})
	return id, nil
}

// VoteSuggestion casts the identity's vote on a suggestion.
func (d *Debate) VoteSuggestion(identity Identity, suggestionID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.book.Vote(identity, suggestionID)
}

// Suggestions returns all suggestions in submission order.
func (d *Debate) Suggestions() []SuggestionSummary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.book.List()
}

// ApproveSuggestion promotes a suggestion into a new open question. It fails
// if the id is unknown or the suggestion was already approved.
func (d *Debate) ApproveSuggestion(suggestionID int) (QuestionSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, err := d.book.Approve(suggestionID)
	if err != nil {
		return QuestionSummary{}, err
	}
	return d.publishQuestionLocked(s.Text, nil, true)
}

// Broadcast publishes an arbitrary event to the room, in order with the
// debate's own broadcasts. The transport uses it for reactions.
func (d *Debate) Broadcast(eventType string, payload interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.publishLocked(eventType, payload)
}

func (d *Debate) publishLocked(eventType string, payload interface{}) {
	if d.publisher == nil {
		return
	}
	event, err := NewEvent(eventType, payload)
	if err != nil {
		return
	}
	d.publisher.Publish(d.ID, event)
}

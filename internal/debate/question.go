package debate

// Answer is one participant's recorded answer. Index is the chosen option for
// closed questions; Text the free response for open ones.
type Answer struct {
	Index int
	Text  string
}

// Question is the answer-collection state machine for one poll item. It keeps
// accepting answers for the lifetime of its debate, but each identity answers
// at most once. A Question is immutable except for its growing answer set.
//
// Questions are not locked internally; the owning Debate serializes access.
type Question struct {
	ID      int
	Title   string
	Options []string
	Open    bool

	answered *IdentitySet
	answers  map[Identity]Answer
}

// QuestionSummary is the wire form of a question. It never carries other
// participants' answers; "answers" is the original protocol's name for the
// option list.
type QuestionSummary struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Answers        []string `json:"answers"`
	IsOpenQuestion bool     `json:"isOpenQuestion"`
}

func newQuestion(id int, title string, options []string, open bool) *Question {
	return &Question{
		ID:       id,
		Title:    title,
		Options:  options,
		Open:     open,
		answered: NewIdentitySet(),
		answers:  make(map[Identity]Answer),
	}
}

// AnswerClosed records an option choice for the identity. It fails with
// ErrInvalid on an open question or an out-of-range index and with
// ErrDuplicate if the identity already answered. Validation runs before any
// mutation, so a failed call leaves the question untouched.
func (q *Question) AnswerClosed(identity Identity, optionIndex int) error {
	if q.Open {
		return ErrInvalid
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrInvalid
	}
	if !q.answered.AddOnce(identity) {
		return ErrDuplicate
	}
	q.answers[identity] = Answer{Index: optionIndex}
	return nil
}

// AnswerOpen records a free-text answer under the same contract as
// AnswerClosed: open questions only, once per identity, nothing mutated on
// failure.
func (q *Question) AnswerOpen(identity Identity, text string) error {
	if !q.Open {
		return ErrInvalid
	}
	if text == "" {
		return ErrInvalid
	}
	if !q.answered.AddOnce(identity) {
		return ErrDuplicate
	}
	q.answers[identity] = Answer{Text: text}
	return nil
}

// AnswerOf returns the identity's recorded answer, if any.
func (q *Question) AnswerOf(identity Identity) (Answer, bool) {
	a, ok := q.answers[identity]
	return a, ok
}

// AnswerCount returns the number of recorded answers.
func (q *Question) AnswerCount() int {
	return len(q.answers)
}

// Summary returns the broadcastable form of the question.
func (q *Question) Summary() QuestionSummary {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	return QuestionSummary{
		ID:             q.ID,
		Title:          q.Title,
		Answers:        options,
		IsOpenQuestion: q.Open,
	}
}

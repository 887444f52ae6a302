package debate

import "strings"

// Suggestion is one audience-submitted follow-up question. A fresh suggestion
// starts with one vote: the submitter counts as the first voter and is never
// required to cast an explicit vote. There is no rejected state; a suggestion
// that is never approved is simply discarded with its debate.
type Suggestion struct {
	ID          int
	Text        string
	SubmittedBy Identity
	Approved    bool

	voters *IdentitySet
}

// VoteCount returns the current number of votes, submitter included.
func (s *Suggestion) VoteCount() int {
	return s.voters.Len()
}

// SuggestionSummary is the wire form of a suggestion.
type SuggestionSummary struct {
	SuggestionID int    `json:"suggestionId"`
	Suggestion   string `json:"suggestion"`
	Votes        int    `json:"votes"`
}

// SuggestionBook manages the suggestion lifecycle for one debate: submission
// under a per-identity quota, vote dedup, and promotion by the moderator.
// It is not locked internally; the owning Debate serializes access.
type SuggestionBook struct {
	maxPerIdentity int
	maxLength      int
	oracle         ProfanityOracle

	nextID      int
	order       []int
	suggestions map[int]*Suggestion
	submissions map[Identity]int
}

func newSuggestionBook(maxPerIdentity, maxLength int, oracle ProfanityOracle) *SuggestionBook {
	return &SuggestionBook{
		maxPerIdentity: maxPerIdentity,
		maxLength:      maxLength,
		oracle:         oracle,
		nextID:         1,
		suggestions:    make(map[int]*Suggestion),
		submissions:    make(map[Identity]int),
	}
}

// Submit records a new suggestion and returns its id. Text policy (length,
// profanity) and the submission quota are all checked before anything is
// mutated, so a rejected submission never consumes quota. The oracle is
// assumed synchronous and fast; a remote oracle would have to be called
// outside the debate lock with the quota re-checked afterwards.
func (b *SuggestionBook) Submit(identity Identity, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalid
	}
	if len(text) > b.maxLength {
		return 0, ErrRejected
	}
	if b.oracle != nil && b.oracle.IsProfane(text) {
		return 0, ErrRejected
	}
	if b.submissions[identity] >= b.maxPerIdentity {
		return 0, ErrQuotaExceeded
	}

	id := b.nextID
	b.nextID++
	b.suggestions[id] = &Suggestion{
		ID:          id,
		Text:        text,
		SubmittedBy: identity,
		voters:      NewIdentitySet(identity),
	}
	b.order = append(b.order, id)
	b.submissions[identity]++
	return id, nil
}

// Vote adds the identity to the suggestion's voters. Voting is idempotent per
// identity: a second vote fails with ErrDuplicate and never increments the
// count. The new count is visible before Vote returns.
func (b *SuggestionBook) Vote(identity Identity, suggestionID int) error {
	s, ok := b.suggestions[suggestionID]
	if !ok {
		return ErrNotFound
	}
	if !s.voters.AddOnce(identity) {
		return ErrDuplicate
	}
	return nil
}

// Approve marks the suggestion as approved exactly once. Promotion into a
// question is the debate's job; the book only tracks the state flip.
func (b *SuggestionBook) Approve(suggestionID int) (*Suggestion, error) {
	s, ok := b.suggestions[suggestionID]
	if !ok {
		return nil, ErrNotFound
	}
	if s.Approved {
		return nil, ErrDuplicate
	}
	s.Approved = true
	return s, nil
}

// List returns all suggestions in insertion order.
func (b *SuggestionBook) List() []SuggestionSummary {
	out := make([]SuggestionSummary, 0, len(b.order))
	for _, id := range b.order {
		s := b.suggestions[id]
		out = append(out, SuggestionSummary{
			SuggestionID: s.ID,
			Suggestion:   s.Text,
			Votes:        s.VoteCount(),
		})
	}
	return out
}

// Get returns the suggestion with the given id.
func (b *SuggestionBook) Get(suggestionID int) (*Suggestion, bool) {
	s, ok := b.suggestions[suggestionID]
	return s, ok
}

// SubmissionCount returns how many suggestions the identity has submitted.
func (b *SuggestionBook) SubmissionCount(identity Identity) int {
	return b.submissions[identity]
}

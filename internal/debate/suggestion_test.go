package debate

import (
	"fmt"
	"strings"
	"testing"
)

// oracleFunc adapts a function to the ProfanityOracle interface for tests.
type oracleFunc func(string) bool

func (f oracleFunc) IsProfane(text string) bool { return f(text) }

func cleanOracle() ProfanityOracle {
	return oracleFunc(func(string) bool { return false })
}

func TestSubmitQuota(t *testing.T) {
	book := newSuggestionBook(3, 200, cleanOracle())

	for i := 0; i < 3; i++ {
		if _, err := book.Submit("c", fmt.Sprintf("Suggestion%d", i)); err != nil {
			t.Fatalf("submission %d should succeed, got %v", i, err)
		}
	}

	if _, err := book.Submit("c", "My last of too many suggestions"); err != ErrQuotaExceeded {
		t.Errorf("4th submission should fail with ErrQuotaExceeded, got %v", err)
	}
	if got := book.SubmissionCount("c"); got != 3 {
		t.Errorf("rejected submission must not consume quota, count = %d", got)
	}
	if len(book.List()) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(book.List()))
	}
}

func TestSubmitLengthPolicy(t *testing.T) {
	book := newSuggestionBook(3, 200, cleanOracle())

	if _, err := book.Submit("c", strings.Repeat("a", 255)); err != ErrRejected {
		t.Errorf("over-long suggestion should fail with ErrRejected, got %v", err)
	}
	if got := book.SubmissionCount("c"); got != 0 {
		t.Errorf("rejected submission must not consume quota, count = %d", got)
	}
}

func TestSubmitProfanityPolicy(t *testing.T) {
	book := newSuggestionBook(3, 200, oracleFunc(func(text string) bool {
		return strings.Contains(text, "badword")
	}))

	if _, err := book.Submit("c", "this contains badword here"); err != ErrRejected {
		t.Errorf("profane suggestion should fail with ErrRejected, got %v", err)
	}
	if _, err := book.Submit("c", "a perfectly fine question"); err != nil {
		t.Errorf("clean suggestion should succeed, got %v", err)
	}
}

func TestSubmitterIsFirstVoter(t *testing.T) {
	book := newSuggestionBook(3, 200, cleanOracle())

	id, err := book.Submit("d", "X")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	s, _ := book.Get(id)
	if s.VoteCount() != 1 {
		t.Errorf("fresh suggestion should start at 1 vote, got %d", s.VoteCount())
	}
	if err := book.Vote("d", id); err != ErrDuplicate {
		t.Errorf("submitter's explicit vote should fail with ErrDuplicate, got %v", err)
	}
	if s.VoteCount() != 1 {
		t.Errorf("vote count should stay at 1, got %d", s.VoteCount())
	}
}

func TestVoteDedup(t *testing.T) {
	book := newSuggestionBook(3, 200, cleanOracle())

	id, err := book.Submit("d", "X")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := book.Vote("e", id); err != nil {
		t.Fatalf("first vote should succeed, got %v", err)
	}
	s, _ := book.Get(id)
	if s.VoteCount() != 2 {
		t.Errorf("vote count should be read-consistent immediately, got %d", s.VoteCount())
	}

	if err := book.Vote("e", id); err != ErrDuplicate {
		t.Errorf("second vote should fail with ErrDuplicate, got %v", err)
	}
	if s.VoteCount() != 2 {
		t.Errorf("vote count should stay at 2, got %d", s.VoteCount())
	}
}

func TestVoteUnknownSuggestion(t *testing.T) {
	book := newSuggestionBook(3, 200, cleanOracle())

	if err := book.Vote("e", -1); err != ErrNotFound {
		t.Errorf("unknown id should fail with ErrNotFound, got %v", err)
	}
}

func TestListInsertionOrder(t *testing.T) {
	book := newSuggestionBook(10, 200, cleanOracle())

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		if _, err := book.Submit("c", text); err != nil {
			t.Fatalf("submit %q failed: %v", text, err)
		}
	}

	list := book.List()
	if len(list) != len(texts) {
		t.Fatalf("expected %d suggestions, got %d", len(texts), len(list))
	}
	for i, text := range texts {
		if list[i].Suggestion != text {
			t.Errorf("position %d: expected %q, got %q", i, text, list[i].Suggestion)
		}
	}
}

func TestApproveOnce(t *testing.T) {
	book := newSuggestionBook(3, 200, cleanOracle())

	id, err := book.Submit("d", "X")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	s, err := book.Approve(id)
	if err != nil {
		t.Fatalf("approve should succeed, got %v", err)
	}
	if !s.Approved {
		t.Error("suggestion should be marked approved")
	}
	if _, err := book.Approve(id); err != ErrDuplicate {
		t.Errorf("second approve should fail with ErrDuplicate, got %v", err)
	}
	if _, err := book.Approve(42); err != ErrNotFound {
		t.Errorf("unknown id should fail with ErrNotFound, got %v", err)
	}
}

func TestSubmitTrimsAndRejectsEmpty(t *testing.T) {
	book := newSuggestionBook(3, 200, cleanOracle())

	if _, err := book.Submit("c", "   "); err != ErrInvalid {
		t.Errorf("blank suggestion should fail with ErrInvalid, got %v", err)
	}

	id, err := book.Submit("c", "  padded  ")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	s, _ := book.Get(id)
	if s.Text != "padded" {
		t.Errorf("expected trimmed text, got %q", s.Text)
	}
}

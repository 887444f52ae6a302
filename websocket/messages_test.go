package websocket

import "testing"

func TestDecodePayloadValid(t *testing.T) {
	var payload answerQuestionPayload
	if err := decodePayload([]byte(`{"questionId": 1, "answerId": 0}`), &payload); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if *payload.QuestionID != 1 || *payload.AnswerID != 0 {
		t.Errorf("unexpected values %d %d", *payload.QuestionID, *payload.AnswerID)
	}
}

func TestDecodePayloadZeroValuesAllowed(t *testing.T) {
	// answerId 0 is a legal option index and must survive required validation.
	var payload answerQuestionPayload
	if err := decodePayload([]byte(`{"questionId": 0, "answerId": 0}`), &payload); err != nil {
		t.Fatalf("zero-valued fields rejected: %v", err)
	}
}

func TestDecodePayloadMissingFields(t *testing.T) {
	cases := []string{
		`{"myFieldIsInvalid": 12}`,
		`{"questionId": 1}`,
		`{}`,
		``,
		`not even json`,
	}
	for _, raw := range cases {
		var payload answerQuestionPayload
		if err := decodePayload([]byte(raw), &payload); err == nil {
			t.Errorf("payload %q should be rejected", raw)
		}
	}
}

func TestDecodeOpenAnswerLength(t *testing.T) {
	var payload answerOpenQuestionPayload
	if err := decodePayload([]byte(`{"questionId": 1, "answer": ""}`), &payload); err == nil {
		t.Error("empty answer should be rejected")
	}
}

func TestIdentityFromToken(t *testing.T) {
	a := identityFromToken("2345675432")
	b := identityFromToken("2345675432")
	if a != b {
		t.Error("the same token must map to the same identity")
	}
	if a == identityFromToken("2143erdv32ew") {
		t.Error("different tokens must map to different identities")
	}
	if identityFromToken("") == identityFromToken("") {
		t.Error("missing tokens should get distinct ephemeral identities")
	}
}

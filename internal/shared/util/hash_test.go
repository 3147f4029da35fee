package util

import "testing"

func TestHashKey(t *testing.T) {
	prompt := "Write a 3–5 sentence personalized recommendation"
	got := HashKey(prompt)
	if got != HashKey(prompt) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == HashKey(prompt+" ") {
		t.Fatalf("expected different inputs to hash differently")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

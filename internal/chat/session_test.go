package chat

import (
	"fmt"
	"testing"
)

func TestGetOrCreateGeneratesID(t *testing.T) {
	store := NewSessionStore()

	id, history := store.GetOrCreate("")
	if id == "" {
		t.Fatal("expected generated session id")
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %v", history)
	}

	again, _ := store.GetOrCreate(id)
	if again != id {
		t.Fatalf("expected same id back, got %q", again)
	}
}

func TestAppendKeepsNewestTwenty(t *testing.T) {
	store := NewSessionStore()
	id, _ := store.GetOrCreate("")

	for i := 0; i < 23; i++ {
		store.Append(id, Turn{Role: "user", Content: fmt.Sprintf("msg-%d", i)})
		if got := len(store.History(id)); got > maxHistory {
			t.Fatalf("history exceeded %d entries: %d", maxHistory, got)
		}
	}

	history := store.History(id)
	if len(history) != maxHistory {
		t.Fatalf("expected %d entries, got %d", maxHistory, len(history))
	}
	for i, turn := range history {
		want := fmt.Sprintf("msg-%d", i+3)
		if turn.Content != want {
			t.Fatalf("entry %d: expected %q, got %q", i, want, turn.Content)
		}
	}
}

func TestAppendPairStaysInOrder(t *testing.T) {
	store := NewSessionStore()
	id, _ := store.GetOrCreate("s1")

	store.Append(id,
		Turn{Role: "user", Content: "hello"},
		Turn{Role: "assistant", Content: "hi there"},
	)

	history := store.History(id)
	if len(history) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Fatalf("unexpected order %v", history)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	store := NewSessionStore()
	id, _ := store.GetOrCreate("")
	store.Append(id, Turn{Role: "user", Content: "original"})

	history := store.History(id)
	history[0].Content = "mutated"

	if store.History(id)[0].Content != "original" {
		t.Fatal("History must return a copy")
	}
}

package domain

// Message roles for conversation turns and LLM prompts.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message in a conversation: a role plus its text.
type Turn struct {
	Role    string
	Content string
}

// History is the ordered log of prior question/answer pairs for one
// interactive session. The session owns it: the answer pipeline reads
// a snapshot and never mutates it. Turns alternate user/assistant when
// populated through Append. Not safe for concurrent writers.
type History struct {
	turns []Turn
}

// Append records a completed question/answer exchange.
func (h *History) Append(question, answer string) {
	h.turns = append(h.turns,
		Turn{Role: RoleUser, Content: question},
		Turn{Role: RoleAssistant, Content: answer},
	)
}

// Clear discards all recorded turns.
func (h *History) Clear() {
	h.turns = nil
}

// Turns returns a copy of the recorded turns, oldest first. The copy
// is safe to hand to the answer pipeline while the session keeps
// appending.
func (h *History) Turns() []Turn {
	if len(h.turns) == 0 {
		return nil
	}
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Len returns the number of recorded turns (two per exchange).
func (h *History) Len() int {
	return len(h.turns)
}

// Exchanges returns the number of completed question/answer pairs.
func (h *History) Exchanges() int {
	return len(h.turns) / 2
}

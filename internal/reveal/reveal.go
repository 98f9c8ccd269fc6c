package reveal

import (
	"iter"
	"sync"
)

// ThinkingLabel is shown, without a character reveal, while a reply is pending.
const ThinkingLabel = "Thinking"

// Reveal is a restartable cursor over the rune prefixes of a finished reply.
// Each call to Next shows one more rune. The completion callback fires once,
// on the call that exposes the full text.
type Reveal struct {
	mu          sync.Mutex
	text        []rune
	cursor      int
	placeholder bool
	completed   bool
	onComplete  func()
}

// New creates a reveal for a finished reply. Any text, including text that
// reads like the placeholder, is revealed in full and completes once.
func New(text string, onComplete func()) *Reveal {
	return &Reveal{
		text:       []rune(text),
		onComplete: onComplete,
	}
}

// NewPlaceholder creates the stand-in shown while a reply is pending. It
// displays the thinking label, never completes and has no callback.
func NewPlaceholder(text string) *Reveal {
	return &Reveal{
		text:        []rune(text),
		placeholder: true,
	}
}

// Next advances the cursor by one rune and returns the displayed prefix.
// more is false once the whole text is shown.
func (r *Reveal) Next() (prefix string, more bool) {
	r.mu.Lock()

	if r.placeholder {
		r.mu.Unlock()
		return ThinkingLabel, true
	}

	if r.cursor < len(r.text) {
		r.cursor++
	}
	prefix = string(r.text[:r.cursor])

	var fire func()
	if r.cursor == len(r.text) && !r.completed {
		r.completed = true
		fire = r.onComplete
	}
	more = !r.completed
	r.mu.Unlock()

	if fire != nil {
		fire()
	}
	return prefix, more
}

// Displayed returns the prefix currently on screen.
func (r *Reveal) Displayed() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.placeholder {
		return ThinkingLabel
	}
	return string(r.text[:r.cursor])
}

// Complete reports whether the whole text has been revealed.
func (r *Reveal) Complete() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// IsPlaceholder reports whether this reveal stands in for a pending reply.
func (r *Reveal) IsPlaceholder() bool {
	return r.placeholder
}

// Text returns the full source text.
func (r *Reveal) Text() string {
	return string(r.text)
}

// Reset rewinds the cursor so the reveal can be replayed; completion fires
// again at the end of the replay.
func (r *Reveal) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor = 0
	r.completed = false
}

// Prefixes yields successive prefixes until the text is fully shown.
// It advances the shared cursor, so stopping early and resuming continues
// where it left off.
func (r *Reveal) Prefixes() iter.Seq[string] {
	return func(yield func(string) bool) {
		if r.placeholder {
			return
		}
		for !r.Complete() {
			prefix, _ := r.Next()
			if !yield(prefix) {
				return
			}
		}
	}
}

package reveal

import (
	"sync"

	"adhibot/pkg/schema"
)

// Presenter keeps one reveal cursor per transcript message.
type Presenter struct {
	mu         sync.Mutex
	reveals    map[string]*Reveal
	onComplete func(id string)
}

// NewPresenter creates a presenter. onComplete receives the ID of each
// message whose reveal finishes.
func NewPresenter(onComplete func(id string)) *Presenter {
	return &Presenter{
		reveals:    make(map[string]*Reveal),
		onComplete: onComplete,
	}
}

// For returns the reveal for msg, creating a fresh one when the message is
// new, its text has changed, or it left the pending state since the last
// call. Only a pending assistant message gets the thinking placeholder.
func (p *Presenter) For(msg schema.Message) *Reveal {
	p.mu.Lock()
	defer p.mu.Unlock()

	pending := msg.IsPlaceholder()
	if r, ok := p.reveals[msg.ID]; ok && r.Text() == msg.Text && r.IsPlaceholder() == pending {
		return r
	}

	var r *Reveal
	if pending {
		r = NewPlaceholder(msg.Text)
	} else {
		id := msg.ID
		r = New(msg.Text, func() {
			if p.onComplete != nil {
				p.onComplete(id)
			}
		})
	}
	p.reveals[msg.ID] = r
	return r
}

// State returns the displayed prefix and completion flag for a message.
func (p *Presenter) State(id string) (prefix string, complete bool, ok bool) {
	p.mu.Lock()
	r, ok := p.reveals[id]
	p.mu.Unlock()

	if !ok {
		return "", false, false
	}
	return r.Displayed(), r.Complete(), true
}

// Forget drops the cursor for a message.
func (p *Presenter) Forget(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.reveals, id)
}

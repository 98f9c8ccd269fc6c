package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"adhibot/internal/reveal"
	"adhibot/pkg/schema"
)

// CLISession runs a conversation session as a line-oriented terminal chat.
type CLISession struct {
	Session   *Session
	Presenter *reveal.Presenter
	In        io.Reader
	Out       io.Writer
	Interval  time.Duration
}

// NewCLISession wires a presenter whose completion signal settles the
// session's reveal state.
func NewCLISession(session *Session, in io.Reader, out io.Writer, interval time.Duration) *CLISession {
	c := &CLISession{
		Session:  session,
		In:       in,
		Out:      out,
		Interval: interval,
	}
	c.Presenter = reveal.NewPresenter(func(id string) {
		session.CompleteReveal(id)
	})
	return c
}

// Run executes the interactive loop until EOF, "exit" or ctx is done.
func (c *CLISession) Run(ctx context.Context) error {
	fmt.Fprintf(c.Out, "⚠️  %s\n\n", schema.BetaNotice)
	for _, msg := range c.Session.Messages() {
		c.printStatic(msg)
	}

	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.Out)
			return scanner.Err()
		}

		line := scanner.Text()
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "exit", "quit":
			return nil
		}

		c.Session.SetInput(line)
		done, err := c.Session.SubmitAsync(ctx, c.Session.Input())
		if err != nil {
			// blank line
			continue
		}

		if err := c.await(ctx, done); err != nil {
			return err
		}

		if err := c.present(ctx, c.Session.Last()); err != nil {
			return err
		}
	}
}

// await shows the thinking animation until the turn completes.
func (c *CLISession) await(ctx context.Context, done <-chan struct{}) error {
	ticks, stop := reveal.NewTicker(c.Interval)
	defer stop()

	step := 0
	fmt.Fprintf(c.Out, "🤖 %s", reveal.ThinkingFrame(step))
	for {
		select {
		case <-done:
			fmt.Fprint(c.Out, "\r\033[K")
			return nil
		case <-ticks:
			step++
			fmt.Fprintf(c.Out, "\r🤖 %s", reveal.ThinkingFrame(step))
		case <-ctx.Done():
			fmt.Fprint(c.Out, "\r\033[K")
			<-done
			return ctx.Err()
		}
	}
}

// present reveals a streaming reply rune by rune; other messages print at once.
func (c *CLISession) present(ctx context.Context, msg schema.Message) error {
	if msg.RevealState != schema.RevealStreaming {
		c.printStatic(msg)
		return nil
	}

	r := c.Presenter.For(msg)
	ticks, stop := reveal.NewTicker(c.Interval)
	defer stop()

	fmt.Fprint(c.Out, "🤖 ")
	shown := 0
	err := reveal.Play(ctx, r, ticks, func(prefix string) {
		// Print only the runes added since the last frame.
		n := utf8.RuneCountInString(prefix)
		if n > shown {
			runes := []rune(prefix)
			fmt.Fprint(c.Out, string(runes[shown:n]))
			shown = n
		}
	})
	fmt.Fprintln(c.Out)
	return err
}

func (c *CLISession) printStatic(msg schema.Message) {
	switch msg.Role {
	case schema.RoleUser:
		fmt.Fprintf(c.Out, "🧑 %s\n", msg.Text)
	default:
		fmt.Fprintf(c.Out, "🤖 %s\n", msg.Text)
	}
}

package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhibot/internal/llm"
	"adhibot/pkg/schema"
)

func TestCLISession_Run(t *testing.T) {
	mock := &llm.MockClient{Response: "Python, and cloud tools."}
	s := newTestSession(mock)

	in := strings.NewReader("What technologies does Adhithyan know?\n   \nexit\n")
	var out bytes.Buffer

	cli := NewCLISession(s, in, &out, time.Millisecond)
	require.NoError(t, cli.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, schema.BetaNotice)
	assert.Contains(t, output, schema.GreetingText)
	assert.Contains(t, output, "Python, and cloud tools.")

	// Blank line was ignored: one call only.
	assert.Len(t, mock.Calls(), 1)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, schema.RevealComplete, msgs[2].RevealState, "presenter completion settles the reveal")
}

func TestCLISession_ErrorReplyPrintedImmediately(t *testing.T) {
	s := newTestSession(&llm.MockClient{Error: errors.New("quota exceeded")})

	var out bytes.Buffer
	cli := NewCLISession(s, strings.NewReader("hello\n"), &out, time.Millisecond)
	require.NoError(t, cli.Run(context.Background()))

	assert.Contains(t, out.String(), llm.MessageUnavailable)
	assert.Equal(t, schema.RevealComplete, s.Last().RevealState)
}

func TestCLISession_EOF(t *testing.T) {
	s := newTestSession(&llm.MockClient{Response: "ok"})

	var out bytes.Buffer
	cli := NewCLISession(s, strings.NewReader(""), &out, time.Millisecond)
	assert.NoError(t, cli.Run(context.Background()))
	assert.Len(t, s.Messages(), 1)
}

func TestCLISession_ReplyReadingLikePlaceholder(t *testing.T) {
	s := newTestSession(&llm.MockClient{Response: schema.PlaceholderText})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	cli := NewCLISession(s, strings.NewReader("hi\n"), &out, time.Millisecond)
	require.NoError(t, cli.Run(ctx))

	assert.Contains(t, out.String(), "🤖 "+schema.PlaceholderText)
	assert.Equal(t, schema.RevealComplete, s.Last().RevealState)
}

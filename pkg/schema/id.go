package schema

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewMessageID generates a new transcript message ID in format MSG-{nanoid(10)}.
func NewMessageID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("MSG-%s", id), nil
}

package chatController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeReplyStripsEmphasis(t *testing.T) {
	in := "**Bold** and _italic_ and *starred*"
	assert.Equal(t, "Bold and italic and starred", SanitizeReply(in))
}

func TestSanitizeReplyTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "hello", SanitizeReply("  hello \n"))
}

func TestSanitizeReplyPlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "for loops repeat a block of code", SanitizeReply("for loops repeat a block of code"))
}

func TestSanitizeReplyEmpty(t *testing.T) {
	assert.Equal(t, "", SanitizeReply("  ** _ * "))
}

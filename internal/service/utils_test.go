package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "plain text", sanitizeUTF8("plain text"))
	assert.Equal(t, "café", sanitizeUTF8("café"))

	// Invalid byte sequences are dropped, valid runes survive.
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
	assert.Equal(t, "", sanitizeUTF8("\xff\xfe"))
}

package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "plain ascii", tp.SanitizeUTF8("plain ascii"))
	assert.Equal(t, "héllo wörld", tp.SanitizeUTF8("héllo wörld"))

	mangled := "wire\xff transfer\xfe"
	cleaned := tp.SanitizeUTF8(mangled)
	assert.True(t, utf8.ValidString(cleaned))
	assert.Contains(t, cleaned, "wire")
	assert.Contains(t, cleaned, "transfer")
}

func TestPreview(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "short", tp.Preview("short", 100))
	assert.Equal(t, "unbounded", tp.Preview("unbounded", 0))

	long := strings.Repeat("a", 600)
	preview := tp.Preview(long, 500)
	assert.Len(t, preview, 503)
	assert.True(t, strings.HasSuffix(preview, "..."))

	// Truncation never splits a multi-byte rune
	multibyte := strings.Repeat("é", 300)
	assert.True(t, utf8.ValidString(tp.Preview(multibyte, 501)))
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"report.pdf":             "report.pdf",
		"../../etc/passwd":       "passwd",
		`C:\Users\me\draft.docx`: "draft.docx",
		"my thesis (v2).pdf":     "my_thesis__v2_.pdf",
		"...":                    "file",
		"résumé.txt":             "r_sum_.txt",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFileName(in), in)
	}
}

func TestStoredFileName(t *testing.T) {
	a := StoredFileName("chapter 1.docx")
	b := StoredFileName("chapter 1.docx")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "_chapter_1.docx"))
	assert.Len(t, strings.SplitN(a, "_", 2)[0], 36)
}

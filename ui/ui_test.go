package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	Table(&buf, []string{"NAME", "KIND"}, [][]string{
		{"org.acme.Service", "INTERFACE"},
		{"org.acme.Repo", "CLASS"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "  NAME              KIND", lines[0])
	assert.Equal(t, "  org.acme.Repo     CLASS", lines[3])
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"NAME"}, nil)
	assert.Empty(t, buf.String())
}

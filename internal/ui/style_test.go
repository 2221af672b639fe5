package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPIDColorIsStable(t *testing.T) {
	assert.Equal(t, processColorIndex("P1"), processColorIndex("P1"))
	for _, id := range []string{"", "A", "P1", "a-much-longer-process-id"} {
		idx := processColorIndex(id)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(processColors))
	}
}

func TestBanner(t *testing.T) {
	SetEnabled(false)
	var buf bytes.Buffer
	Banner(&buf, "Round Robin")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Round Robin", lines[1])
	assert.Equal(t, "A", PID("A"))
}

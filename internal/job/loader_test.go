package job

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := "A,2,5\n" +
		"# comment\n" +
		"\n" +
		"B, 1, 3\n" +
		"C,3,8"

	specs, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Spec{
		{ID: "A", Priority: 2, Burst: 5},
		{ID: "B", Priority: 1, Burst: 3},
		{ID: "C", Priority: 3, Burst: 8},
	}, specs)
}

func TestParse_Empty(t *testing.T) {
	specs, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestParse_InvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"non-numeric priority", "A,high,5\n", "line 1"},
		{"non-numeric burst", "A,1,5\nB,1,five\n", "line 2"},
		{"negative burst", "A,1,-5\n", "negative burst"},
		{"missing field", "A,1\n", "want 3 fields"},
		{"extra field", "A,1,2,3\n", "want 3 fields"},
		{"empty id", " ,1,2\n", "empty id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			require.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.txt")
	require.NoError(t, os.WriteFile(path, []byte("P1,1,10\nP2,2,4\n"), 0644))

	specs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, specs, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestProcesses(t *testing.T) {
	specs := []Spec{{ID: "A", Priority: 2, Burst: 5}, {ID: "B", Priority: 1, Burst: 3}}

	first := Processes(specs)
	second := Processes(specs)
	require.Len(t, first, 2)
	assert.Equal(t, "A", first[0].ID())
	assert.Equal(t, 5, first[0].Burst())
	assert.Equal(t, 5, first[0].Remaining())
	assert.NotSame(t, first[0], second[0])
}

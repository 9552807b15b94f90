package scanner

import (
	"strings"
	"testing"

	"github.com/golangros/gorosidl/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantType string
		wantName string
	}{
		{"field line", "int32 count", "int32", "count"},
		{"pure comment", "# a comment", "", ""},
		{"empty", "", "", ""},
		{"whitespace only", "   \t ", "", ""},
		{"constant declaration", "int32 X=5", "", ""},
		{"spaced constant", "int32 X = 5", "", ""},
		{"inline comment", "string label  # trailing", "string", "label"},
		{"comment leaves blank", "   # indented comment", "", ""},
		{"fixed size array", "int32[5] values", "int32[]", "values"},
		{"bounded array", "float64[<=10] samples", "float64[]", "samples"},
		{"empty array", "byte[] raw", "byte[]", "raw"},
		{"scoped reference", "geometry_msgs/Point position", "geometry_msgs/msg/Point", "position"},
		{"scoped array reference", "geometry_msgs/Point[] path", "geometry_msgs/msg/Point[]", "path"},
		{"type only", "int32", "int32", ""},
		{"tab separated", "int32\tcount", "int32", "count"},
		{"extra whitespace", "  int32   count  ", "int32", "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotName := Split(tt.line)
			assert.Equal(t, tt.wantType, gotType, "type token")
			assert.Equal(t, tt.wantName, gotName, "name token")
		})
	}
}

// Re-tokenizing an already-normalized line yields the same result.
func TestSplitIdempotent(t *testing.T) {
	typ, name := Split("int32[8] values")
	require.Equal(t, "int32[]", typ)

	typ2, name2 := Split(typ + " " + name)
	assert.Equal(t, typ, typ2)
	assert.Equal(t, name, name2)
}

func TestIsSeparator(t *testing.T) {
	assert.True(t, IsSeparator("---"))
	assert.True(t, IsSeparator("----"))
	assert.True(t, IsSeparator("  --- "))
	assert.False(t, IsSeparator("--"))
	assert.False(t, IsSeparator("int32 a"))
	assert.False(t, IsSeparator(""))
}

// Lines are content, not a read failure: there is no length limit.
func TestScannerVeryLongLine(t *testing.T) {
	long := "# " + strings.Repeat("x", 200*1024)
	sc := New(strings.NewReader("int32 a\n"+long+"\nstring b\n"), types.Logger{})

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	require.Len(t, lines, 3)
	assert.Equal(t, "int32 a", lines[0])
	assert.Equal(t, long, lines[1])
	assert.Equal(t, "string b", lines[2])
}

func TestScannerCarriageReturns(t *testing.T) {
	sc := New(strings.NewReader("int32 a\r\nstring b"), types.Logger{})

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"int32 a", "string b"}, lines)
}

func TestScannerLines(t *testing.T) {
	sc := New(strings.NewReader("one\ntwo\nthree"), types.Logger{})

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Equal(t, 3, sc.Line())
}

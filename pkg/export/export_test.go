package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())

	_, err = ParseFormat("xlsx")
	require.Error(t, err)
}

func TestCSVRendererPadsShortRows(t *testing.T) {
	out, err := NewCSVRenderer().Render(Table{
		Columns: []string{"title", "course"},
		Rows:    [][]string{{"Lab 1", "CS101"}, {"Essay"}},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "title,course", lines[0])
	assert.Equal(t, "Essay,", lines[2])
}

func TestRenderersRequireColumns(t *testing.T) {
	_, err := NewCSVRenderer().Render(Table{})
	require.Error(t, err)
	_, err = NewPDFRenderer().Render(Table{})
	require.Error(t, err)
}

func TestPDFRendererProducesDocument(t *testing.T) {
	out, err := RendererFor(FormatPDF).Render(Table{
		Title:   "Assignments",
		Columns: []string{"Title", "Due"},
		Rows:    [][]string{{"Lab 1", "2025-09-15"}},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"edna/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExport(t *testing.T) {
	res := profile.Score(profile.AnswerMap{"L1_Q1": "map_it"})

	book, err := NewExcelExporter().Export(res)
	require.NoError(t, err)
	require.NotEmpty(t, book)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"Core Identity", "Mirror Awareness", "Capability", "Drive"} {
		assert.Contains(t, sheets, want)
	}
	assert.NotContains(t, sheets, "Sheet1", "the default sheet must be removed")

	coreType, err := f.GetCellValue("Core Identity", "B2")
	require.NoError(t, err)
	assert.Equal(t, string(res.CoreIdentity.Type), coreType)
}

func TestHTMLRender(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	require.NoError(t, err)

	res := profile.Score(profile.AnswerMap{"L1_Q1": "map_it"})
	page, err := renderer.Render(res, "founder@example.com")
	require.NoError(t, err)

	doc := string(page)
	assert.True(t, strings.Contains(doc, "Core Identity"))
	assert.Contains(t, doc, string(res.CoreIdentity.Type))
	assert.Contains(t, doc, "founder@example.com")
}

package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkuspot/spotbot/internal/domain"
)

func TestExportWritesQuotedSemicolonCSV(t *testing.T) {
	env := newTestEnv(t)
	exports := NewExportService(env.submissions)

	sess := issueSession()
	sess.AdditionalInfo = `he said "dump it here"`
	require.NoError(t, env.reports.Submit("42", sess))

	dir := t.TempDir()
	path, err := exports.Export(dir)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(path), "city_issue_data_export_"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	require.True(t, strings.HasPrefix(content, "\uFEFF"), "missing BOM")
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(content, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		`"id";"pseudonym";"submission_type";"standard_selections";"custom_inputs";"latitude";"longitude";"venue_title";"venue_address";"additional_info";"age";"gender";"occupation";"time_in_turku";"timestamp"`,
		lines[0])

	assert.Contains(t, lines[1], `"1"`)
	assert.Contains(t, lines[1], `"issue"`)
	assert.Contains(t, lines[1], `"60.45";"22.27"`)
	assert.Contains(t, lines[1], `"he said ""dump it here"""`)
	assert.Contains(t, lines[1], `"26-40"`)
}

func TestExportEmptyTableWritesHeaderOnly(t *testing.T) {
	env := newTestEnv(t)
	exports := NewExportService(env.submissions)

	dir := t.TempDir()
	path, err := exports.Export(dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestExportJoinedSelections(t *testing.T) {
	env := newTestEnv(t)
	exports := NewExportService(env.submissions)

	sess := issueSession()
	sess.IssueTypes = []string{"Illegal dumping", "Litter in natural areas"}
	require.NoError(t, env.reports.Submit("42", sess))

	path, err := exports.Export(t.TempDir())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw),
		`"Illegal dumping`+domain.FieldSeparator+`Litter in natural areas"`)
}

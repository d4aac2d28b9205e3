package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"transportner/internal/source"
	"transportner/internal/store"
)

func runCommand(t *testing.T, stdin string, args ...string) Output {
	t.Helper()
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), args, strings.NewReader(stdin), &stdout, io.Discard))

	var out Output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out), stdout.String())
	return out
}

func TestRun_Stdin(t *testing.T) {
	out := runCommand(t, "Вчера автомобиль ВАЗ-2110, г/н А123ВС77, врезался в столб.")
	require.Len(t, out.Results, 1)
	assert.Equal(t, 1, out.Mentions)
	assert.Equal(t, "-", out.Source)
	assert.Equal(t, "Auto", out.Results[0].Document.Mentions[0].Kind)
}

func TestRun_Lines(t *testing.T) {
	out := runCommand(t, "самолет Ту-154\n\nпогода хорошая\nтеплоход «Мария»\n", "-format", "lines")
	require.Len(t, out.Results, 3)
	assert.Equal(t, 2, out.Mentions)
	assert.Empty(t, out.Results[1].Document.Mentions)
}

func TestRun_Windows1251File(t *testing.T) {
	data, err := charmap.Windows1251.NewEncoder().Bytes([]byte("теплоход «Михаил Светлов» прибыл в порт"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "news.txt")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out := runCommand(t, "", "-in", path)
	require.Len(t, out.Results, 1)
	require.Equal(t, 1, out.Mentions)
	assert.Equal(t, "теплоход «Михаил Светлов»", out.Results[0].Document.Mentions[0].Text)
}

func TestRun_HTML(t *testing.T) {
	out := runCommand(t, "<p>автомобиль BMW X5</p><style>.a{}</style>", "-format", "html")
	assert.Equal(t, 1, out.Mentions)
}

func TestRun_XLSXRoundTripAndDatabase(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "report.xlsx")
	dbPath := filepath.Join(dir, "mentions.db")

	out := runCommand(t, "самолет Ту-154\nавтомобиль BMW X5", "-format", "lines", "-xlsx-out", report, "-db", dbPath)
	require.Equal(t, 2, out.Mentions)

	texts, err := source.ReadXLSXColumn(report, "", "Text")
	require.NoError(t, err)
	assert.Equal(t, []string{"самолет Ту-154", "автомобиль BMW X5"}, texts)

	// отчет сам может быть входом
	again := runCommand(t, "", "-in", report, "-format", "xlsx", "-column", "Text")
	assert.Equal(t, 2, again.Mentions)

	db, err := store.NewMentionsDB(dbPath)
	require.NoError(t, err)
	defer db.Close()
	mentions, err := db.MentionsByDocument(context.Background(), out.Results[1].Document.ID)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, "автомобиль BMW X5", mentions[0].Text)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"неизвестный формат", []string{"-format", "pdf"}},
		{"xlsx без файла", []string{"-format", "xlsx"}},
		{"неизвестная кодировка", []string{"-encoding", "utf-16"}},
		{"нет файла", []string{"-in", "/nonexistent/file.txt"}},
		{"неизвестный флаг", []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, strings.NewReader("текст"), io.Discard, io.Discard)
			assert.Error(t, err)
		})
	}
}

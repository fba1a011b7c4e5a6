package view

import (
	"os"
	"strings"
	"testing"

	"pairctl/internal/config"
	"pairctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newModel(width, height int) *model.Model {
	cfg := config.GetDefaultConfig()
	m := model.InitializeModel(model.TUIConfig{Keys: cfg.Keys, UI: cfg.UI})
	m.Width, m.Height = width, height
	return m
}

func addPair(m *model.Model, k, v string) {
	m.StartEditing()
	for _, r := range k {
		m.AppendRune(r)
	}
	m.SwitchField()
	for _, r := range v {
		m.AppendRune(r)
	}
	m.CommitPair()
}

func TestRender_NormalEmpty(t *testing.T) {
	out := Render(newModel(100, 30).Snapshot())

	assert.Contains(t, out, "Create New JSON")
	assert.Contains(t, out, "Normal Mode")
	assert.Contains(t, out, "Not Editing Anything")
	assert.Contains(t, out, "No pairs yet. Press e to add one.")
	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, "{}")
}

func TestRender_PairsInOrder(t *testing.T) {
	m := newModel(100, 30)
	addPair(m, "name", "Alice")
	addPair(m, "lang", "go")
	out := Render(m.Snapshot())

	assert.Contains(t, out, "name     : Alice")
	assert.Contains(t, out, "lang     : go")
	assert.Contains(t, out, "Pairs (2)")
	assert.Contains(t, out, `"name": "Alice"`)
	assert.Less(t, strings.Index(out, "name     : Alice"), strings.Index(out, "lang     : go"))
}

func TestRender_LongKeyIsTruncatedToColumn(t *testing.T) {
	m := newModel(100, 30)
	addPair(m, "averyveryverylongkey", "v")
	out := Render(m.Snapshot())

	assert.Contains(t, out, "averyve… : v")
}

func TestRender_EditingKey(t *testing.T) {
	m := newModel(100, 30)
	m.StartEditing()
	m.AppendRune('n')
	m.AppendRune('a')
	out := Render(m.Snapshot())

	assert.Contains(t, out, "Enter a new key-value pair")
	assert.Contains(t, out, "Key")
	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "na")
	assert.Contains(t, out, "Editing Mode")
	assert.Contains(t, out, "Editing JSON Key")
}

func TestRender_EditingValue(t *testing.T) {
	m := newModel(100, 30)
	m.StartEditing()
	m.SwitchField()
	out := Render(m.Snapshot())

	assert.Contains(t, out, "Editing JSON Value")
}

func TestRender_ConfirmingExit(t *testing.T) {
	m := newModel(100, 30)
	m.RequestExit()
	out := Render(m.Snapshot())

	assert.Contains(t, out, "Would you like to output the buffer as json? (y/n)")
	assert.Contains(t, out, "Exiting")
	assert.Contains(t, out, "q: leave without output")
}

func TestRender_StatusMessageReplacesModeLine(t *testing.T) {
	m := newModel(100, 30)
	m.StatusBarMessage = "JSON copied to clipboard"
	m.StatusBarMessageType = model.StatusBarSuccess
	out := Render(m.Snapshot())

	assert.Contains(t, out, "JSON copied to clipboard")
	assert.NotContains(t, out, "Not Editing Anything")
}

func TestRender_FullHelp(t *testing.T) {
	m := newModel(100, 30)
	short := Render(m.Snapshot())
	m.ToggleHelp()
	full := Render(m.Snapshot())

	assert.NotContains(t, short, "copy json")
	assert.Contains(t, full, "copy json")
	assert.Contains(t, full, "ctrl+c")
}

func TestRender_PreviewHiddenWhenNarrowOrDisabled(t *testing.T) {
	narrow := Render(newModel(40, 20).Snapshot())
	assert.NotContains(t, narrow, "Preview")

	m := newModel(100, 30)
	m.ShowPreview = false
	assert.NotContains(t, Render(m.Snapshot()), "Preview")
}

func TestRender_FallbackSize(t *testing.T) {
	out := Render(newModel(0, 0).Snapshot())

	assert.Equal(t, fallbackHeight, lipgloss.Height(out))
	assert.Equal(t, fallbackWidth, lipgloss.Width(out))
}

func TestRender_IsPure(t *testing.T) {
	m := newModel(100, 30)
	addPair(m, "x", "1")
	snap := m.Snapshot()

	first := Render(snap)
	second := Render(snap)
	assert.Equal(t, first, second)
	assert.Equal(t, m.Snapshot(), snap)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Normal Mode", ModeLabel(model.ModeNormal))
	assert.Equal(t, "Editing Mode", ModeLabel(model.ModeEditing))
	assert.Equal(t, "Exiting", ModeLabel(model.ModeConfirmingExit))
	assert.Equal(t, "Not Editing Anything", EditingLabel(model.Snapshot{}))
	assert.Equal(t, "Editing JSON Value", EditingLabel(model.Snapshot{Editing: true, SubMode: model.FieldValue}))
}

func TestPreviewJSON_FitsHeight(t *testing.T) {
	m := newModel(100, 30)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		addPair(m, k, "v")
	}
	got := previewJSON(m.Snapshot().Pairs, 40, 4)

	assert.Equal(t, "{\n  \"a\": \"v\",\n  \"b\": \"v\",\n…", got)
}

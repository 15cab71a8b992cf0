package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-hours/config"
)

var fixedNow = time.Date(2019, time.April, 1, 3, 0, 0, 0, time.UTC)

func newTestPrompt(input string) (*Prompt, *bytes.Buffer) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader(input), &out, func() time.Time { return fixedNow })
	return p, &out
}

func TestRun_Defaults(t *testing.T) {
	root, err := filepath.Abs("..")
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", root)
	p, _ := newTestPrompt("\n\n")

	file, when, err := p.Run()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "resources", config.REST_HOURS_RESOURCE), file)
	assert.FileExists(t, file)
	assert.Equal(t, fixedNow, when)
}

func TestAskFile_RepromptsOnMissingFile(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "hours.csv")
	require.NoError(t, os.WriteFile(existing, []byte(`"A","Mon 9 am - 5 pm"`), 0o644))
	p, out := newTestPrompt("nope.csv\n" + existing + "\n")

	file, err := p.AskFile()

	require.NoError(t, err)
	assert.Equal(t, existing, file)
	assert.Equal(t, 1, strings.Count(out.String(), missingFileMessage))
	assert.Equal(t, 2, strings.Count(out.String(), fileQuestion))
}

func TestAskFile_RejectsDirectory(t *testing.T) {
	p, out := newTestPrompt(t.TempDir() + "\n\n")

	file, err := p.AskFile()

	require.NoError(t, err)
	assert.Equal(t, p.DefaultFile, file)
	assert.Contains(t, out.String(), missingFileMessage)
}

func TestAskTime_RepromptsOnWrongFormat(t *testing.T) {
	p, out := newTestPrompt("2019-04-01 3am\n2019-03-27 19:00:00\n")

	when, err := p.AskTime()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.March, 27, 19, 0, 0, 0, time.UTC), when)
	assert.Equal(t, 1, strings.Count(out.String(), wrongFormatMessage))
}

func TestRun_InputClosed(t *testing.T) {
	p, _ := newTestPrompt("nope.csv\n")
	p.FileExists = func(string) bool { return false }

	_, _, err := p.Run()

	assert.ErrorIs(t, err, ErrInputClosed)
}

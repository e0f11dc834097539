package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/qrage/pkg/logger/types"
)

func TestInitWritesToOutputWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Output: &buf, Prefix: "[qrage]"}))

	l, err := Named("render")
	require.NoError(t, err)
	l.Infof("exported %s", "png")
	_ = l.Sync()

	out := buf.String()
	assert.Contains(t, out, "[qrage] ")
	assert.Contains(t, out, "main.render")
	assert.Contains(t, out, "exported png")
}

func TestLogHook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Output: &buf}))

	var got []types.Log
	SetLogHook(func(log types.Log) { got = append(got, log) })
	defer SetLogHook(nil)

	Log.Warn("badge skipped")

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, "badge skipped", last.Message)
	assert.Equal(t, "main", last.LoggerName)
}

func TestDebugLevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Output: &buf}))

	Log.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}

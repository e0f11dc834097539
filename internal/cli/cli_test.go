package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
)

func run(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	root := New(stdout, stderr).RootCommand()
	root.SetArgs(args)
	root.SetOut(stderr)
	root.SetErr(stderr)
	err = root.ExecuteContext(context.Background())
	return stdout, stderr, err
}

func TestURLToStdoutSVG(t *testing.T) {
	stdout, _, err := run(t, "url", "https://example.com", "--format", "svg", "--out", "-", "--title", "Shop")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "<?xml"))
	assert.Contains(t, stdout.String(), ">Shop</text>")
}

func TestSocialToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gh.png")
	_, stderr, err := run(t, "social", "github", "gopher", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Contains(t, stderr.String(), "error correction H")
}

func TestPDFExport(t *testing.T) {
	stdout, _, err := run(t, "url", "https://example.com", "-f", "pdf", "-o", "-")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("%PDF-")))
}

func TestWiFiPreview(t *testing.T) {
	stdout, _, err := run(t, "wifi", "Cafe", "--security", "nopass", "--preview")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
	assert.Greater(t, strings.Count(stdout.String(), "\n"), 10)
}

func TestPlatforms(t *testing.T) {
	stdout, _, err := run(t, "platforms")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "custom"))
	assert.Contains(t, stdout.String(), "https://github.com/<handle>")
	assert.Contains(t, stdout.String(), "https://tiktok.com/@<handle>")
	assert.NotContains(t, stdout.String(), "@@")
}

func TestContrastAdjustedIsLogged(t *testing.T) {
	_, stderr, err := run(t, "url", "https://example.com", "--fg", "#FFFF00", "-o", "-", "-f", "svg")
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "colors adjusted for contrast")
	assert.Contains(t, stderr.String(), "qrage")
}

func TestInvalidInput(t *testing.T) {
	_, _, err := run(t, "url", "example")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)

	_, _, err = run(t, "wifi", "Cafe")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)

	_, _, err = run(t, "url", "https://example.com", "--format", "gif", "-o", "-")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)

	_, _, err = run(t, "url", "https://example.com", "--fg", "purple", "-o", "-")
	assert.Error(t, err)
}

func TestTitleTooLong(t *testing.T) {
	stdout, _, err := run(t, "url", "https://example.com", "-f", "svg", "-o", "-", "--title", strings.Repeat("T", 80))
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)
	assert.Empty(t, stdout.String())

	stdout, _, err = run(t, "url", "https://example.com", "-f", "svg", "-o", "-", "--title", strings.Repeat("é", 50))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), strings.Repeat("é", 50))
}

func TestEncodingError(t *testing.T) {
	_, _, err := run(t, "url", "https://example.com/"+strings.Repeat("a", 4000), "--ec", "H", "-o", "-")
	assert.ErrorIs(t, err, errorz.ErrEncoding)
}

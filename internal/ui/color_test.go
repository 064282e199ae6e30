package ui

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// captureColorOutput captures output from the color package.
// The color package uses color.Output which defaults to os.Stdout.
func captureColorOutput(fn func()) string {
	oldNoColor := color.NoColor
	oldOutput := color.Output

	color.NoColor = true

	r, w, _ := os.Pipe()
	color.Output = w

	oldStdout := os.Stdout
	os.Stdout = w

	fn()

	w.Close()

	color.Output = oldOutput
	color.NoColor = oldNoColor
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	r.Close()

	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureColorOutput(func() {
		Success("rendered %d manifests", 3)
	})
	assert.Equal(t, "✓ rendered 3 manifests\n", output)
}

func TestError(t *testing.T) {
	output := captureColorOutput(func() {
		Error("render failed: %s", "bad gate")
	})
	assert.Equal(t, "✗ render failed: bad gate\n", output)
}

func TestWarning(t *testing.T) {
	output := captureColorOutput(func() {
		Warning("gate will fail closed")
	})
	assert.Equal(t, "⚠ gate will fail closed\n", output)
}

func TestInfo(t *testing.T) {
	output := captureColorOutput(func() {
		Info("rendering %s", "manifests/api.yaml")
	})
	assert.Equal(t, "rendering manifests/api.yaml\n", output)
}

func TestHeader(t *testing.T) {
	output := captureColorOutput(func() {
		Header("=== Lint ===")
	})
	assert.Equal(t, "=== Lint ===\n", output)
}

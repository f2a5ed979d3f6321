package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mako"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageHTML = `<html>
<head><title>Blue Widget | Example Shop</title></head>
<body>
	<nav><a href="/">Home</a></nav>
	<article>
		<h1>Blue Widget</h1>
		<p>The blue widget is a compact tool that covers most everyday fastening jobs without fuss.</p>
		<h2>Details</h2>
		<p>It ships with a two year warranty and replaceable tips.</p>
	</article>
	<footer>Footer chrome</footer>
</body>
</html>`

func writeTestPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(testPageHTML), 0644))
	return path
}

func TestMain_Generate(t *testing.T) {
	t.Run("from file to stdout", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{
			"generate", "-f", writeTestPage(t), "https://example.com/products/blue-widget",
		}, &stdout, &stderr)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, `mako: "1.0"`)
		assert.Contains(t, out, `canonical: "https://example.com/products/blue-widget"`)
		assert.Contains(t, out, "# Blue Widget")
		assert.Contains(t, out, "## Details")
	})

	t.Run("writes capsule file with --out", func(t *testing.T) {
		outDir := t.TempDir()
		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{
			"generate", "-f", writeTestPage(t), "-o", outDir, "https://example.com/products/blue-widget",
		}, &stdout, &stderr)

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(outDir, "products", "blue-widget.mako.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Blue Widget")
	})

	t.Run("missing input", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"generate"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, mako.EINVALID, mako.ErrorCode(err))
	})
}

func TestMain_Validate(t *testing.T) {
	t.Run("round trip through generate", func(t *testing.T) {
		outDir := t.TempDir()
		m := NewMain()

		var stdout, stderr bytes.Buffer
		require.NoError(t, m.Run(context.Background(), []string{
			"generate", "-f", writeTestPage(t), "-o", outDir, "https://example.com/products/blue-widget",
		}, &stdout, &stderr))

		capsulePath := filepath.Join(outDir, "products", "blue-widget.mako.md")

		stdout.Reset()
		stderr.Reset()
		err := m.Run(context.Background(), []string{"validate", capsulePath}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "is valid")
	})

	t.Run("invalid capsule file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.mako.md")
		require.NoError(t, os.WriteFile(path, []byte("---\nmako: \"1.0\"\ntype: nonsense\n---\n\n# X\n"), 0644))

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{"validate", path}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "invalid content type")
	})
}

func TestMain_NoCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestBuildGenerator(t *testing.T) {
	t.Run("unknown reducer", func(t *testing.T) {
		_, err := buildGenerator("boilerpipe", 1000, nil)

		require.Error(t, err)
		assert.Equal(t, mako.EINVALID, mako.ErrorCode(err))
	})

	t.Run("trafilatura not doubled as fallback", func(t *testing.T) {
		gen, err := buildGenerator("trafilatura", 1000, nil)

		require.NoError(t, err)
		assert.Len(t, gen.Reducers, 1)
	})

	t.Run("goquery backed by trafilatura", func(t *testing.T) {
		gen, err := buildGenerator("goquery", 1000, nil)

		require.NoError(t, err)
		assert.Len(t, gen.Reducers, 2)
	})
}

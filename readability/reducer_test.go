package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mako/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducer_Reduce(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content", func(t *testing.T) {
		t.Parallel()

		para := strings.Repeat("The blue widget covers most everyday fastening jobs without fuss. ", 10)
		result, err := readability.NewReducer().Reduce(`<html>
			<head><title>Widget Review</title></head>
			<body>
				<article>
					<h1>Widget Review</h1>
					<p>` + para + `</p>
				</article>
			</body>
		</html>`)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Widget Review", result.Title)
		assert.Contains(t, result.ContentHTML, "everyday fastening jobs")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewReducer().Reduce("   ")

		require.NoError(t, err)
		assert.True(t, result.Empty())
	})
}

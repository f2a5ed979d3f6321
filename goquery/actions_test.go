package goquery_test

import (
	"testing"

	"github.com/fwojciec/mako"
	"github.com/fwojciec/mako/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionExtractor_ExtractActions(t *testing.T) {
	t.Parallel()

	t.Run("repeated buttons yield one action", func(t *testing.T) {
		t.Parallel()

		actions, err := goquery.NewActionExtractor().ExtractActions(`
			<button>Añadir al carrito</button>
			<button>Añadir al carrito</button>
			<button>Añadir al carrito</button>
		`)

		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "add_to_cart", actions[0].Name)
	})

	t.Run("distinct actions collected in order", func(t *testing.T) {
		t.Parallel()

		actions, err := goquery.NewActionExtractor().ExtractActions(`
			<button>Add to cart</button>
			<button>Checkout now</button>
			<a class="btn" href="/contact">Contact us</a>
		`)

		require.NoError(t, err)
		require.Len(t, actions, 3)
		assert.Equal(t, "add_to_cart", actions[0].Name)
		assert.Equal(t, "checkout", actions[1].Name)
		assert.Equal(t, "contact", actions[2].Name)
	})

	t.Run("submit input uses value attribute", func(t *testing.T) {
		t.Parallel()

		actions, err := goquery.NewActionExtractor().ExtractActions(`<input type="submit" value="Subscribe">`)

		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "subscribe", actions[0].Name)
	})

	t.Run("unmatched labels are ignored", func(t *testing.T) {
		t.Parallel()

		actions, err := goquery.NewActionExtractor().ExtractActions(`<button>Lorem ipsum dolor</button>`)

		require.NoError(t, err)
		assert.Empty(t, actions)
	})

	t.Run("long labels are prose not buttons", func(t *testing.T) {
		t.Parallel()

		actions, err := goquery.NewActionExtractor().ExtractActions(
			`<button>Add to cart today and enjoy free shipping on every order over fifty euros</button>`)

		require.NoError(t, err)
		assert.Empty(t, actions)
	})

	t.Run("caps at five actions", func(t *testing.T) {
		t.Parallel()

		actions, err := goquery.NewActionExtractor().ExtractActions(`
			<button>Add to cart</button>
			<button>Checkout</button>
			<button>Contact us</button>
			<button>Subscribe</button>
			<button>Sign up</button>
			<button>Log in</button>
			<button>Download</button>
		`)

		require.NoError(t, err)
		assert.Len(t, actions, mako.MaxActions)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		actions, err := goquery.NewActionExtractor().ExtractActions("")

		require.NoError(t, err)
		assert.Empty(t, actions)
	})
}

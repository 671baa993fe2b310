package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert("<h3>Return value</h3>")
		require.NoError(t, err)
		assert.Contains(t, md, "### Return value")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert("<table><tr><th>Code</th></tr><tr><td>ERROR_SUCCESS</td></tr></table>")
		require.NoError(t, err)
		assert.Contains(t, md, "| Code |")
		assert.Contains(t, md, "ERROR_SUCCESS")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		_, err := c.Convert("  \n ")
		require.Error(t, err)
		assert.Equal(t, msdocs.EINVALID, msdocs.ErrorCode(err))
	})
}

package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	t.Run("plain text passes through with whitespace collapsed", func(t *testing.T) {
		got := StripHTML("Développement   d'applications\n\nweb et mobiles")
		assert.Equal(t, "Développement d'applications web et mobiles", got)
	})

	t.Run("tags are removed", func(t *testing.T) {
		got := StripHTML("<p>Développement d'applications <strong>web</strong> et mobiles</p>")
		assert.Equal(t, "Développement d'applications web et mobiles", got)
	})

	t.Run("script and style content is dropped", func(t *testing.T) {
		got := StripHTML("<div>Analyse de données<script>alert(1)</script><style>p{}</style></div>")
		assert.Equal(t, "Analyse de données", got)
		assert.NotContains(t, got, "alert")
	})

	t.Run("list markup flattens to text", func(t *testing.T) {
		got := StripHTML("<ul><li>Python</li><li>SQL</li></ul>")
		assert.Equal(t, "Python SQL", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", StripHTML(""))
	})
}

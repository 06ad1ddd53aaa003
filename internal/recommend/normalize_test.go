package recommend

import (
	"strings"
	"testing"

	"github.com/kljensen/snowball/french"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n  "))
}

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	got := Normalize("Python, React & Node.js!")

	assert.Equal(t, strings.ToLower(got), got)
	assert.NotContains(t, got, ",")
	assert.NotContains(t, got, "&")
	assert.NotContains(t, got, "!")
	assert.NotContains(t, got, ".")
}

func TestNormalize_RemovesFrenchStopwords(t *testing.T) {
	got := Normalize("le développement des applications pour la banque")

	tokens := strings.Fields(got)
	assert.NotContains(t, tokens, "le")
	assert.NotContains(t, tokens, "des")
	assert.NotContains(t, tokens, "pour")
	assert.NotContains(t, tokens, "la")
	assert.NotEmpty(t, tokens)
}

func TestNormalize_StemsTokens(t *testing.T) {
	// "Python!" must normalize to exactly the stem of "python".
	assert.Equal(t, french.Stem("python", false), Normalize("Python!"))
}

func TestNormalize_HandlesAccentedCharacters(t *testing.T) {
	got := Normalize("Développeur expérimenté à Dakar")

	// Accented letters are kept as letters, not stripped as punctuation.
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, "  ")
	for _, r := range got {
		assert.False(t, r >= 'A' && r <= 'Z', "no uppercase expected in %q", got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "Ingénieur Réseau Télécom: maintenance, optimisation (4G/LTE)"
	assert.Equal(t, Normalize(input), Normalize(input))
}

func TestNormalize_SingleSpaceJoined(t *testing.T) {
	got := Normalize("python    machine_learning\n\tsql")
	assert.NotContains(t, got, "  ")
	assert.False(t, strings.HasPrefix(got, " "))
	assert.False(t, strings.HasSuffix(got, " "))
}

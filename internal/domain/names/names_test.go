package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTitleCasesTokens(t *testing.T) {
	cases := map[string]string{
		" joão  silva ":  "João Silva",
		"JOÃO SILVA":     "João Silva",
		"maria":          "Maria",
		"ANA\tde  souza": "Ana De Souza",
		"   ":            "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Display(in), "input %q", in)
	}
}

func TestDisplayIsIdempotent(t *testing.T) {
	for _, in := range []string{" joão  silva ", "MARIA DAS DORES", "élise"} {
		once := Display(in)
		assert.Equal(t, once, Display(once))
	}
}

func TestKeyGroupsCaseAndWhitespaceVariants(t *testing.T) {
	assert.Equal(t, Key(" joão  silva "), Key("JOÃO SILVA"))
	assert.Equal(t, Key("Maria Silva"), Key(Display("maria silva")))
	assert.NotEqual(t, Key("Maria Silva"), Key("Maria Souza"))
}

func TestKeyUnifiesComposedAndDecomposedAccents(t *testing.T) {
	composed := "João"
	decomposed := "Joa\u0303o"
	assert.Equal(t, Key(composed), Key(decomposed))
	assert.Equal(t, Display(composed), Display(decomposed))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Maria Silva", "SILVA"))
	assert.True(t, Contains("Maria Silva", "  "))
	assert.True(t, Contains("Maria Silva", "ria si"))
	assert.False(t, Contains("Maria Silva", "souza"))
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(" \t "))
	assert.True(t, Valid(" a "))
}

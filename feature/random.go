package feature

import (
	"math/rand/v2"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	onsets = []string{"b", "br", "c", "ch", "d", "f", "g", "gr", "h", "j", "k", "kh", "l", "m", "n", "p", "r", "s", "sh", "t", "th", "v", "z"}
	nuclei = []string{"a", "ae", "ai", "e", "ei", "i", "ia", "o", "ou", "u", "y"}
	codas  = []string{"", "", "", "l", "n", "r", "s", "th", "x"}
)

// RandomName returns pronounceable two part name generated from the given
// one. The same name (ignoring case) always produces the same result.
func RandomName(name string) string {
	seed := xxhash.Sum64String(cases.Fold().String(strings.TrimSpace(name)))
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))

	title := cases.Title(language.Und)
	return title.String(word(rng)) + " " + title.String(word(rng))
}

func word(rng *rand.Rand) string {
	var b strings.Builder
	for range 2 + rng.IntN(2) {
		b.WriteString(onsets[rng.IntN(len(onsets))])
		b.WriteString(nuclei[rng.IntN(len(nuclei))])
	}
	b.WriteString(codas[rng.IntN(len(codas))])
	return b.String()
}

package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	gslug "github.com/gosimple/slug"
)

// SlugSuffixLength is the number of random base36 characters appended to a
// slug to disambiguate identical titles.
const SlugSuffixLength = 6

// maxSlugBaseLength keeps base + "-" + suffix within the slug column's
// 255-character limit even for maximal titles.
const maxSlugBaseLength = 255 - 1 - SlugSuffixLength

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// SlugAssigner derives unique, URL-safe article identifiers from titles.
// Collisions remain possible by construction; the store's unique index is
// the final authority and callers retry with a fresh suffix on
// domain.ErrDuplicateKey.
type SlugAssigner struct{}

// NewSlugAssigner creates a new SlugAssigner.
func NewSlugAssigner() *SlugAssigner {
	return &SlugAssigner{}
}

// Assign produces a lowercase hyphenated transliteration of the title with a
// random base36 suffix. Each call generates fresh entropy, so repeated calls
// for the same title yield different slugs.
func (a *SlugAssigner) Assign(title string) (string, error) {
	suffix, err := randomBase36(SlugSuffixLength)
	if err != nil {
		return "", fmt.Errorf("slug suffix: %w", err)
	}

	base := gslug.Make(title)
	if len(base) > maxSlugBaseLength {
		// gslug.Make output is ASCII, so byte truncation is rune-safe.
		base = strings.TrimRight(base[:maxSlugBaseLength], "-")
	}
	if base == "" {
		// Titles that transliterate to nothing (punctuation only) still
		// need a resolvable slug.
		return suffix, nil
	}
	return base + "-" + suffix, nil
}

func randomBase36(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = base36Alphabet[idx.Int64()]
	}
	return string(out), nil
}

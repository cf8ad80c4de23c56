package words

import (
	"errors"
	"math/rand"
	"slices"
	"time"
)

// ErrNoMatch is returned when no catalogue entry survives the requested
// category/difficulty filters. Callers must refuse to start a game on it.
var ErrNoMatch = errors.New("no location matches the requested filters")

// Location is one secret item: a localized name table plus the sub-roles
// non-spy players can be assigned at that location.
type Location struct {
	Names      map[string]string `json:"names"`
	Roles      []string          `json:"roles,omitempty"`
	Category   string            `json:"category"`
	Difficulty string            `json:"difficulty"`
}

// Name returns the display name for the given language tag, falling back to
// English when no translation exists.
func (l Location) Name(lang string) string {
	if n, ok := l.Names[lang]; ok && n != "" {
		return n
	}
	return l.Names["en"]
}

// Provider selects one secret item for a game. Implementations must be safe
// to call repeatedly; every call draws fresh.
type Provider interface {
	Select(categories []string, difficulty string) (Location, error)
}

// Catalogue is a static set of locations. It implements Provider.
type Catalogue []Location

// Select draws uniformly from the catalogue entries matching the filters.
// Empty categories or difficulty means "any".
func (c Catalogue) Select(categories []string, difficulty string) (Location, error) {
	matches := make([]Location, 0, len(c))
	for _, l := range c {
		if difficulty != "" && l.Difficulty != difficulty {
			continue
		}
		if len(categories) > 0 && !slices.Contains(categories, l.Category) {
			continue
		}
		matches = append(matches, l)
	}
	if len(matches) == 0 {
		return Location{}, ErrNoMatch
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return matches[r.Intn(len(matches))], nil
}

package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueSelect(t *testing.T) {
	t.Parallel()

	cat := Catalogue{
		{Names: map[string]string{"en": "Bank"}, Category: "work", Difficulty: DifficultyMedium},
		{Names: map[string]string{"en": "Beach"}, Category: "outdoors", Difficulty: DifficultyEasy},
		{Names: map[string]string{"en": "Submarine"}, Category: "military", Difficulty: DifficultyHard},
	}

	testCases := []struct {
		desc       string
		categories []string
		difficulty string
		wantNames  []string
		wantErr    error
	}{
		{
			desc:      "no filters matches everything",
			wantNames: []string{"Bank", "Beach", "Submarine"},
		},
		{
			desc:       "difficulty filter",
			difficulty: DifficultyEasy,
			wantNames:  []string{"Beach"},
		},
		{
			desc:       "category filter",
			categories: []string{"work", "military"},
			wantNames:  []string{"Bank", "Submarine"},
		},
		{
			desc:       "both filters",
			categories: []string{"work"},
			difficulty: DifficultyMedium,
			wantNames:  []string{"Bank"},
		},
		{
			desc:       "empty result",
			categories: []string{"work"},
			difficulty: DifficultyHard,
			wantErr:    ErrNoMatch,
		},
		{
			desc:       "unknown category",
			categories: []string{"volcano"},
			wantErr:    ErrNoMatch,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			// Selection is random; draw repeatedly and check membership.
			for i := 0; i < 20; i++ {
				got, err := cat.Select(tC.categories, tC.difficulty)
				if tC.wantErr != nil {
					require.ErrorIs(t, err, tC.wantErr)
					return
				}
				require.NoError(t, err)
				assert.Contains(t, tC.wantNames, got.Names["en"])
			}
		})
	}
}

func TestLocationNameFallback(t *testing.T) {
	t.Parallel()

	l := Location{Names: map[string]string{"en": "Hospital", "sv": "Sjukhus"}}
	assert.Equal(t, "Sjukhus", l.Name("sv"))
	assert.Equal(t, "Hospital", l.Name("zh"), "missing translation falls back to English")
	assert.Equal(t, "Hospital", l.Name(""))
}

func TestDefaultCatalogueShape(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Default)
	for _, l := range Default {
		assert.NotEmpty(t, l.Names["en"], "every entry needs a canonical English name")
		assert.NotEmpty(t, l.Roles, "every entry needs sub-roles")
		assert.NotEmpty(t, l.Category)
		assert.Contains(t, []string{DifficultyEasy, DifficultyMedium, DifficultyHard}, l.Difficulty)
	}
}

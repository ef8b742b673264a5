package watchlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Matrix", "the matrix"},
		{"Léon: The Professional", "leon the professional"},
		{"Spider-Man", "spider man"},
		{"  WALL·E  ", "walle"},
		{"M*A*S*H", "mash"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeTitle(tt.in), "input %q", tt.in)
	}
}

func TestRankByTitle(t *testing.T) {
	movies := []*Movie{
		{Title: "Alien vs Predator"},
		{Title: "Aliens"},
		{Title: "Alien"},
	}

	rankByTitle(movies, "alien")

	assert.Equal(t, "Alien", movies[0].Title)
	assert.Equal(t, "Aliens", movies[1].Title)
	assert.Equal(t, "Alien vs Predator", movies[2].Title)
}

func TestRankByTitle_StableOnTies(t *testing.T) {
	movies := []*Movie{
		{Title: "Heat"},
		{Title: "Heat"},
	}
	first := movies[0]

	rankByTitle(movies, "heat")

	assert.Same(t, first, movies[0], "equal scores keep incoming order")
}

package domain_discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameTokensSplitsGenreAndDeduplicates(t *testing.T) {
	g := game(1, "X", "Action, RPG", []string{" RPG ", "Open World", "open world"}, 0, 0)

	assert.Equal(t, []string{"action", "rpg", "open world"}, GameTokens(g))
}

func TestGameTokensEmptyGame(t *testing.T) {
	g := game(1, "X", "", nil, 0, 0)

	assert.Empty(t, GameTokens(g))

	g.Genre = " , ,"
	assert.Empty(t, GameTokens(g))
}

func TestFoldTitleStripsDiacriticsAndLowercases(t *testing.T) {
	assert.Equal(t, "god of war ragnarok", FoldTitle("God of War Ragnarök"))
	assert.Equal(t, "pokemon", FoldTitle("Pokémon"))
	assert.Equal(t, "nier:automata", FoldTitle("NieR:Automata"))
}

func TestMatchesFilters(t *testing.T) {
	g := game(1, "X", "Action RPG", []string{"Souls-like", "Fantasy"}, 0, 0)

	assert.True(t, matchesFilters(g, "", ""))
	assert.True(t, matchesFilters(g, "rpg", ""))
	assert.True(t, matchesFilters(g, "", "souls"))
	assert.True(t, matchesFilters(g, "rpg", "fantasy"))
	assert.False(t, matchesFilters(g, "racing", ""))
	assert.False(t, matchesFilters(g, "rpg", "racing"))
}

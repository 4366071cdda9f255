package domain

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Game is identified by its title, which is set once by NewGame.
type Game struct {
	title   string
	results []*Result
}

func NewGame(title string) (*Game, error) {
	g := &Game{}
	if err := g.setTitle(title); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) setTitle(title string) error {
	if g.title != "" {
		return ErrTitleAlreadySet
	}
	if title == "" {
		return ErrEmptyTitle
	}
	g.title = title
	return nil
}

func (g *Game) Title() string {
	return g.title
}

// Results returns the results recorded for the game in registration order.
func (g *Game) Results() []*Result {
	results := make([]*Result, len(g.results))
	copy(results, g.results)
	return results
}

// Players returns the distinct players that have a result for the game.
func (g *Game) Players() mapset.Set[*Player] {
	players := mapset.NewThreadUnsafeSet[*Player]()
	for _, r := range g.results {
		players.Add(r.player)
	}
	return players
}

// AverageScore returns the mean score of the player on the game, or 0 if the
// player has never played it.
func (g *Game) AverageScore(p *Player) float64 {
	avg, _ := g.Average(p)
	return avg
}

// Average is AverageScore that also reports whether the player has any
// results for the game.
func (g *Game) Average(p *Player) (float64, bool) {
	var sum, n int
	for _, r := range g.results {
		if r.player != p {
			continue
		}
		sum += r.score
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

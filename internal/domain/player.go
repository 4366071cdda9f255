package domain

import (
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	minUsernameLen = 2
	maxUsernameLen = 16
)

type Player struct {
	username string
	results  []*Result
}

func NewPlayer(username string) (*Player, error) {
	p := &Player{}
	if err := p.setUsername(username); err != nil {
		return nil, err
	}
	return p, nil
}

// setUsername validates on every call; unlike a game title it is not guarded
// against reassignment.
func (p *Player) setUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < minUsernameLen || n > maxUsernameLen {
		return ErrUsernameLength
	}
	p.username = username
	return nil
}

func (p *Player) Username() string {
	return p.username
}

func (p *Player) Results() []*Result {
	results := make([]*Result, len(p.results))
	copy(results, p.results)
	return results
}

// GamesPlayed returns the distinct games the player has a result for.
func (p *Player) GamesPlayed() mapset.Set[*Game] {
	games := mapset.NewThreadUnsafeSet[*Game]()
	for _, r := range p.results {
		games.Add(r.game)
	}
	return games
}

func (p *Player) PlayedGame(g *Game) bool {
	return p.GamesPlayed().Contains(g)
}

func (p *Player) NumTimesPlayed(g *Game) int {
	var n int
	for _, r := range p.results {
		if r.game == g {
			n++
		}
	}
	return n
}

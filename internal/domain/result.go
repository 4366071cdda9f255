package domain

const (
	MinScore = 1
	MaxScore = 5000
)

// Result records a single score of a player on a game. A Result is only
// obtainable through NewResult, which registers it with both sides.
type Result struct {
	player *Player
	game   *Game
	score  int
}

func NewResult(p *Player, g *Game, score int) (*Result, error) {
	r := &Result{}
	if err := r.setPlayer(p); err != nil {
		return nil, err
	}
	if err := r.setGame(g); err != nil {
		return nil, err
	}
	if err := r.setScore(score); err != nil {
		return nil, err
	}

	p.results = append(p.results, r)
	g.results = append(g.results, r)
	return r, nil
}

func (r *Result) setScore(score int) error {
	if r.score != 0 {
		return ErrScoreAlreadySet
	}
	if score < MinScore || score > MaxScore {
		return ErrScoreRange
	}
	r.score = score
	return nil
}

func (r *Result) setPlayer(p *Player) error {
	if p == nil {
		return ErrNilPlayer
	}
	r.player = p
	return nil
}

func (r *Result) setGame(g *Game) error {
	if g == nil {
		return ErrNilGame
	}
	r.game = g
	return nil
}

func (r *Result) Player() *Player {
	return r.player
}

func (r *Result) Game() *Game {
	return r.game
}

func (r *Result) Score() int {
	return r.score
}

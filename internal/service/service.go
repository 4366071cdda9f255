package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goserg/gametracker/internal/cache/mem"
	"github.com/goserg/gametracker/internal/domain"

	"github.com/sirupsen/logrus"
)

var (
	ErrGameExists     = errors.New("game already exists")
	ErrPlayerExists   = errors.New("player already exists")
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
)

// Tracker owns the games and players of a session. Results are recorded
// under the write lock; queries share the read lock.
type Tracker struct {
	mu    sync.RWMutex
	cache *mem.Cache
	log   *logrus.Entry
}

type Standing struct {
	Player  *domain.Player
	Average float64
	Played  int
}

type GameSummary struct {
	Game    *domain.Game
	Average float64
	Played  int
}

func New(l *logrus.Logger) *Tracker {
	return &Tracker{
		cache: mem.New(),
		log:   l.WithField("module", "tracker"),
	}
}

func (t *Tracker) AddGame(title string) (*domain.Game, error) {
	g, err := domain.NewGame(title)
	if err != nil {
		return nil, err
	}
	if !t.cache.AddGame(g) {
		return nil, fmt.Errorf("%w: %q", ErrGameExists, title)
	}
	t.log.WithField("title", title).Debug("game added")
	return g, nil
}

func (t *Tracker) AddPlayer(username string) (*domain.Player, error) {
	p, err := domain.NewPlayer(username)
	if err != nil {
		return nil, err
	}
	if !t.cache.AddPlayer(p) {
		return nil, fmt.Errorf("%w: %q", ErrPlayerExists, username)
	}
	t.log.WithField("username", username).Debug("player added")
	return p, nil
}

func (t *Tracker) Game(title string) (*domain.Game, error) {
	g, ok := t.cache.Game(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, title)
	}
	return g, nil
}

func (t *Tracker) Player(username string) (*domain.Player, error) {
	p, ok := t.cache.Player(username)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, username)
	}
	return p, nil
}

func (t *Tracker) Games() []*domain.Game {
	return t.cache.Games()
}

func (t *Tracker) Players() []*domain.Player {
	return t.cache.Players()
}

// Record stores a score of the player on the game. Both lookup failures are
// reported together.
func (t *Tracker) Record(username, title string, score int) (*domain.Result, error) {
	p, playerErr := t.Player(username)
	g, gameErr := t.Game(title)
	if err := errors.Join(playerErr, gameErr); err != nil {
		return nil, err
	}

	t.mu.Lock()
	r, err := domain.NewResult(p, g, score)
	t.mu.Unlock()
	if err != nil {
		t.log.WithError(err).WithFields(logrus.Fields{
			"username": username,
			"title":    title,
			"score":    score,
		}).Warn("result rejected")
		return nil, err
	}
	t.log.WithFields(logrus.Fields{
		"username": p.Username(),
		"title":    g.Title(),
		"score":    score,
	}).Info("result recorded")
	return r, nil
}

// Standings ranks the players of a game by average score, highest first.
func (t *Tracker) Standings(title string) ([]Standing, error) {
	g, err := t.Game(title)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	players := g.Players().ToSlice()
	standings := make([]Standing, 0, len(players))
	for _, p := range players {
		avg, _ := g.Average(p)
		standings = append(standings, Standing{
			Player:  p,
			Average: avg,
			Played:  p.NumTimesPlayed(g),
		})
	}
	t.mu.RUnlock()

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Average != standings[j].Average {
			return standings[i].Average > standings[j].Average
		}
		return standings[i].Player.Username() < standings[j].Player.Username()
	})
	return standings, nil
}

// History summarizes every game the player has played, ordered by title.
func (t *Tracker) History(username string) ([]GameSummary, error) {
	p, err := t.Player(username)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	games := p.GamesPlayed().ToSlice()
	history := make([]GameSummary, 0, len(games))
	for _, g := range games {
		avg, _ := g.Average(p)
		history = append(history, GameSummary{
			Game:    g,
			Average: avg,
			Played:  p.NumTimesPlayed(g),
		})
	}
	t.mu.RUnlock()

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Game.Title() < history[j].Game.Title()
	})
	return history, nil
}

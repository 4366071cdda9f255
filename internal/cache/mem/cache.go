package mem

import (
	"sort"
	"sync"

	"github.com/goserg/gametracker/internal/domain"
	"github.com/goserg/gametracker/internal/normalize"
)

// Cache indexes games by title and players by username.
type Cache struct {
	mu      sync.RWMutex
	games   map[string]*domain.Game
	players map[string]*domain.Player
}

func New() *Cache {
	return &Cache{
		games:   make(map[string]*domain.Game),
		players: make(map[string]*domain.Player),
	}
}

// AddGame reports false if a game with the same normalized title is present.
func (c *Cache) AddGame(g *domain.Game) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := normalize.Name(g.Title())
	if _, ok := c.games[key]; ok {
		return false
	}
	c.games[key] = g
	return true
}

func (c *Cache) AddPlayer(p *domain.Player) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := normalize.Name(p.Username())
	if _, ok := c.players[key]; ok {
		return false
	}
	c.players[key] = p
	return true
}

func (c *Cache) Game(title string) (*domain.Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	g, ok := c.games[normalize.Name(title)]
	return g, ok
}

func (c *Cache) Player(username string) (*domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.players[normalize.Name(username)]
	return p, ok
}

func (c *Cache) Games() []*domain.Game {
	c.mu.RLock()
	games := make([]*domain.Game, 0, len(c.games))
	for _, g := range c.games {
		games = append(games, g)
	}
	c.mu.RUnlock()

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Title() < games[j].Title()
	})
	return games
}

func (c *Cache) Players() []*domain.Player {
	c.mu.RLock()
	players := make([]*domain.Player, 0, len(c.players))
	for _, p := range c.players {
		players = append(players, p)
	}
	c.mu.RUnlock()

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Username() < players[j].Username()
	})
	return players
}

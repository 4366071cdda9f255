package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult_Score(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		wantErr bool
	}{
		{name: "zero", score: 0, wantErr: true},
		{name: "negative", score: -1, wantErr: true},
		{name: "lower bound", score: 1},
		{name: "upper bound", score: 5000},
		{name: "above upper bound", score: 5001, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, "Chess")
			p := mustPlayer(t, "ana")
			r, err := NewResult(p, g, tt.score)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrScoreRange)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, r)
				assert.Empty(t, g.Results())
				assert.Empty(t, p.Results())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.score, r.Score())
		})
	}
}

func TestNewResult_NilReferences(t *testing.T) {
	g := mustGame(t, "Chess")
	p := mustPlayer(t, "ana")

	_, err := NewResult(nil, g, 10)
	assert.ErrorIs(t, err, ErrNilPlayer)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewResult(p, nil, 10)
	assert.ErrorIs(t, err, ErrNilGame)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, g.Results())
	assert.Empty(t, p.Results())
}

func TestNewResult_Registers(t *testing.T) {
	g := mustGame(t, "Chess")
	p := mustPlayer(t, "ana")

	r, err := NewResult(p, g, 1200)
	require.NoError(t, err)

	assert.Same(t, p, r.Player())
	assert.Same(t, g, r.Game())
	assert.Equal(t, []*Result{r}, g.Results())
	assert.Equal(t, []*Result{r}, p.Results())
}

func TestResult_setScore(t *testing.T) {
	r := mustResult(t, mustPlayer(t, "ana"), mustGame(t, "Chess"), 100)

	err := r.setScore(200)
	require.ErrorIs(t, err, ErrState)
	assert.ErrorIs(t, err, ErrScoreAlreadySet)
	assert.Equal(t, 100, r.Score())
}

func TestResult_setPlayerAndGame(t *testing.T) {
	r := mustResult(t, mustPlayer(t, "ana"), mustGame(t, "Chess"), 100)
	p := r.Player()
	g := r.Game()

	assert.ErrorIs(t, r.setPlayer(nil), ErrValidation)
	assert.ErrorIs(t, r.setGame(nil), ErrValidation)
	assert.Same(t, p, r.Player())
	assert.Same(t, g, r.Game())
}

func TestScenario(t *testing.T) {
	g := mustGame(t, "Chess")
	p := mustPlayer(t, "ana")
	mustResult(t, p, g, 1200)
	mustResult(t, p, g, 1300)

	players := g.Players()
	assert.Equal(t, 1, players.Cardinality())
	assert.True(t, players.Contains(p))
	assert.Equal(t, 1250.0, g.AverageScore(p))

	games := p.GamesPlayed()
	assert.Equal(t, 1, games.Cardinality())
	assert.True(t, games.Contains(g))
	assert.Equal(t, 2, p.NumTimesPlayed(g))
}

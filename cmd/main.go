package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goserg/gametracker/internal/config"
	"github.com/goserg/gametracker/internal/logger"
	"github.com/goserg/gametracker/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "configs/tracker.toml", "path to config file")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		return err
	}
	if cfg.App.Debug {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	l, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	tracker := service.New(l)
	for _, title := range []string{"Chess", "Go"} {
		if _, err := tracker.AddGame(title); err != nil {
			return err
		}
	}
	for _, username := range []string{"ana", "bob"} {
		if _, err := tracker.AddPlayer(username); err != nil {
			return err
		}
	}
	sessions := []struct {
		username string
		title    string
		score    int
	}{
		{"ana", "Chess", 1200},
		{"ana", "Chess", 1300},
		{"bob", "Chess", 1100},
		{"bob", "Go", 2400},
		{"ana", "Go", 900},
	}
	for _, s := range sessions {
		if _, err := tracker.Record(s.username, s.title, s.score); err != nil {
			return err
		}
	}

	for _, g := range tracker.Games() {
		standings, err := tracker.Standings(g.Title())
		if err != nil {
			return err
		}
		for i, s := range standings {
			l.WithFields(logrus.Fields{
				"game":     g.Title(),
				"place":    i + 1,
				"username": s.Player.Username(),
				"average":  s.Average,
				"played":   s.Played,
			}).Info("standing")
		}
	}
	for _, p := range tracker.Players() {
		history, err := tracker.History(p.Username())
		if err != nil {
			return err
		}
		for _, h := range history {
			l.WithFields(logrus.Fields{
				"username": p.Username(),
				"game":     h.Game.Title(),
				"average":  h.Average,
				"played":   h.Played,
			}).Info("history")
		}
	}
	return nil
}

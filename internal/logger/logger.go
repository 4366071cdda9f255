package logger

import (
	"time"

	"github.com/goserg/gametracker/internal/config"

	"github.com/sirupsen/logrus"
)

func New(cfg config.Log) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.DateTime,
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.DateTime,
			FullTimestamp:   true,
		})
	}
	l.SetLevel(level)
	return l, nil
}

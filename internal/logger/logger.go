package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the application logger. Unknown level strings fall back to info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.Warn("unknown log level, use info")
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return log
}

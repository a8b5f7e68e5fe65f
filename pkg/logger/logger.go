package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config options du logger.
type Config struct {
	Env   string // development -> sortie console lisible ; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger wrapper autour de zerolog pour l'injection et la cohérence.
type Logger struct {
	zl zerolog.Logger
}

// New crée un logger structuré. En development la sortie est lisible ; en production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Rediriger le logger global de zerolog pour les librairies qui l'utilisent
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop renvoie un logger muet, pratique dans les tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error délégués à zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crée un sous-logger avec des champs fixes.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Composant crée un sous-logger étiqueté par composant (session, scope, ...).
func (l *Logger) Composant(nom string) *Logger {
	return &Logger{zl: l.zl.With().Str("composant", nom).Logger()}
}

// Zerolog expose le logger interne quand l'API directe est nécessaire.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

package main

import (
	"bufio"
	"flag"
	"os"
	"strings"
	"zarena/internal/config"
	"zarena/internal/rng"
	"zarena/internal/util"
	"zarena/pkg/playable/poker/texasholdem"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var auto = flag.Bool("auto", false, "play random legal actions for every seat")
var jsonMode = flag.Bool("json", false, "read JSON payloads from stdin and write responses to stdout")
var rounds = flag.Int("rounds", -1, "number of rounds to play, overrides the configuration")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Fatal("could not load .env")
	}

	cfg := config.Instance()
	setupLogger(cfg)

	gen := rng.NewSeeded(cfg.Seed)
	logrus.WithField("seed", gen.Seed()).Info("deck seeded")

	table, err := texasholdem.New(logrus.StandardLogger(), cfg.Stakes, texasholdem.Options{
		InfiniteCredits: cfg.InfiniteCredits,
		Rand:            gen,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create table")
	}

	if *jsonMode {
		if err := serveJSON(table.Environment(), os.Stdin, os.Stdout); err != nil {
			logrus.WithError(err).Fatal("driver failed")
		}

		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	maxRounds := cfg.Rounds
	if *rounds >= 0 {
		maxRounds = *rounds
	}

	r := &repl{
		table:     table,
		names:     util.SeatNames(rng.Crypto{}, len(cfg.Stakes)),
		in:        bufio.NewScanner(os.Stdin),
		auto:      *auto,
		picker:    rng.NewSeeded(gen.Seed() + 1),
		maxRounds: maxRounds,
	}

	if err := r.run(); err != nil {
		logrus.WithError(err).Fatal("game stopped")
	}
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

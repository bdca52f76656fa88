package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokervm/pkg/replay"
)

var (
	verify = flag.Bool("verify", false, "replay the log twice and print the state hash if both runs agree")
	player = flag.String("player", "", "only reveal what this player address is allowed to see")
	pretty = flag.Bool("pretty", term.IsTerminal(int(os.Stdout.Fd())), "indent the printed state")
	debug  = flag.Bool("debug", false, "log every applied action")
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <log.yaml|->\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	l, err := loadLog(flag.Arg(0))
	if err != nil {
		logger.WithError(err).Fatal("could not load the action log")
	}

	if *verify {
		hash, err := replay.Verify(logger, l)
		if err != nil {
			logger.WithError(err).Fatal("verification failed")
		}

		fmt.Println(hash)
		return
	}

	game, err := replay.Run(logger, l)
	if game == nil {
		logger.WithError(err).Fatal("could not create the table")
	}

	if err != nil {
		logger.WithError(err).Error("replay stopped")
	}

	state := game.State()
	if *player != "" {
		state = state.ForPlayer(*player)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	if encErr := enc.Encode(state); encErr != nil {
		logger.WithError(encErr).Fatal("could not print the state")
	}

	if err != nil {
		os.Exit(1)
	}
}

func loadLog(filename string) (*replay.Log, error) {
	var r io.Reader = os.Stdin
	if filename != "-" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		r = file
	}

	return replay.Load(r)
}

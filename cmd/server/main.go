package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"pokervm/internal/config"
	"pokervm/internal/mux"
	"pokervm/internal/rng"
	"pokervm/pkg/db"
	"pokervm/pkg/room"
	"pokervm/pkg/store"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")
var inMemory = flag.Bool("memory", false, "keep tables in memory instead of PostgreSQL")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *addr != "" {
		cfg.Addr = *addr
	}

	defaultOptions, err := cfg.DefaultGameOptions.Options()
	if err != nil {
		logrus.WithError(err).Fatal("invalid default game options")
	}

	if err := defaultOptions.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid default game options")
	}

	dealerOptions := room.DealerOptions{
		TickInterval: time.Duration(cfg.TickInterval) * time.Millisecond,
	}

	if cfg.RandomSeeds {
		dealerOptions.Seeds = rng.Crypto{}
	}

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), newStore(cfg), dealerOptions)
	pitBoss.StartShift()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, pitBoss, defaultOptions))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func newStore(cfg config.Config) store.Store {
	if *inMemory {
		logrus.Warn("tables are kept in memory and will not survive a restart")
		return store.NewMemory()
	}

	dbh, err := db.Instance()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the database")
	}

	// run the db migrations
	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	return store.NewPostgres(dbh)
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

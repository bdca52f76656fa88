package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"pokervm/internal/config"
	"pokervm/internal/util"
	"pokervm/pkg/db"
	"pokervm/pkg/playable/poker/texasholdem"
	"pokervm/pkg/store"
)

var command = flag.String("c", "table", "specifies the command (table, tables)")

var stdin = bufio.NewReader(os.Stdin)

func main() {
	flag.Parse()

	dbh, err := db.Instance()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the database")
	}

	st := store.NewPostgres(dbh)
	ctx := context.Background()

	switch *command {
	case "table":
		opts, err := config.Instance().DefaultGameOptions.Options()
		if err != nil {
			logrus.WithError(err).Fatal("invalid default game options")
		}

		name, err := getInput("Name", util.GetRandomName())
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		gameType, err := getInput("Type (cash/sit-and-go)", string(opts.Type))
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if opts.Type, err = texasholdem.GameTypeFromString(gameType); err != nil {
			logrus.WithError(err).Fatal("invalid game type")
		}

		if opts.Type == texasholdem.GameTypeSitAndGo {
			// every entrant pays the same buy-in
			opts.MaxBuyIn = opts.MinBuyIn
		}

		maxPlayers, err := getInput("Max players", strconv.Itoa(opts.MaxPlayers))
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if opts.MaxPlayers, err = strconv.Atoi(maxPlayers); err != nil {
			logrus.WithError(err).Fatal("invalid number of players")
		}

		if err := opts.Validate(); err != nil {
			logrus.WithError(err).Fatal("invalid options")
		}

		tbl, err := st.CreateTable(ctx, name, opts)
		if err != nil {
			logrus.WithError(err).Fatal("could not create table")
		}

		fmt.Printf("Created table %s (%s)\n", tbl.Name, tbl.UUID)
	case "tables":
		tables, err := st.GetTables(ctx, 0, 100)
		if err != nil {
			logrus.WithError(err).Fatal("could not list tables")
		}

		for _, tbl := range tables {
			fmt.Printf("%s\t%s\t%s\t%s\n", tbl.UUID, tbl.Created.Format("2006-01-02 15:04"), tbl.Options.Type, tbl.Name)
		}
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// getInput asks the question and returns the answer, or defaultValue if the answer is empty
func getInput(question, defaultValue string) (string, error) {
	fmt.Printf("%s [%s]: ", question, defaultValue)
	str, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}

	if str = strings.TrimRight(str, "\r\n"); str == "" {
		return defaultValue, nil
	}

	return str, nil
}

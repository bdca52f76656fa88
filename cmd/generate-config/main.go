package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"pokervm/internal/config"
)

var output = flag.String("o", "", "write the configuration to this file instead of stdout")

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logrus.WithError(err).Fatal("could not create the config file")
		}
		defer file.Close()

		w = file
	}

	if err := yaml.NewEncoder(w).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not write the config")
	}
}

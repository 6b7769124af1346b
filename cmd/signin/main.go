// Package main is the entry point for the signin CLI.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/avvvet/signin-register/internal/cli"
)

func main() {
	log.SetOutput(os.Stderr)
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

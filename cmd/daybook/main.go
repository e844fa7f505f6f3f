package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"tableflip.dev/daybook/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		logrus.Fatalf("error during command execution: %v", err)
	}
}

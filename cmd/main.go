package main

import (
	"github.com/sirupsen/logrus"

	"github.com/mensonones/service-pro-api/cmd/bootstrap"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to start service-pro-api: %v", err)
	}

	app.Run()
}

package main

import (
	"fmt"
	"os"

	"github.com/starcoin-app/payment-core/config"
	"github.com/starcoin-app/payment-core/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	myApp := &app.App{}
	myApp.Initialize(cfg)
	defer myApp.Shutdown()
	myApp.Run()
}

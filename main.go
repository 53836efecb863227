package main

import (
	"os"

	"github.com/sevenup/cpm/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

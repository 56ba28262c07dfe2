package main

import (
	"fmt"
	"os"

	"github.com/TACC/hazmapper-qgis-plugin/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

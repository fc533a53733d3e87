package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/usagestats/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		var usageErr *app.UsageError
		if errors.As(err, &usageErr) {
			fmt.Println(app.UsageLine)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", app.Describe(err))
		}
		os.Exit(1)
	}
}

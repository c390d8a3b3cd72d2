package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andy/piecework/internal/app"
	"github.com/andy/piecework/internal/cli"
)

func main() {
	// Help, completion and the rate table never touch the database, so skip key setup for them
	if cli.NeedsApp(os.Args[1:]) {
		ctx := context.Background()
		a, err := app.New(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()
		cli.SetApp(a)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/surfgraph/pagerank/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd.Execute(ctx)
}

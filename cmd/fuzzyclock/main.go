package main

import (
	"context"

	"github.com/faizmokh/fuzzyclock/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

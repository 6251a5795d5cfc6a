// nanofmt formats {}-style templates from the command line.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/bjaus/nanofmt/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

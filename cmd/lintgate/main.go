// Command lintgate runs a static-analysis tool inside a prepared environment
// and exits 0 when the tool reports a clean tree, 1 otherwise.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// The first interrupt is forwarded to the tool, whose status still decides
	// the outcome. Restoring default handling lets a second one end the gate.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

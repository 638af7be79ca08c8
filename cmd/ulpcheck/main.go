// Command ulpcheck sweeps the SIMD math routines and reports their error in
// ULPs against Go's math package.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdt3rd/pal/internal/ulpcheck"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := ulpcheck.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ulpcheck:", err)
	}
	os.Exit(ulpcheck.ExitCode(err))
}

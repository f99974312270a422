// Command seoctl runs the URL analysis engine from the command line and
// prints JSON results to stdout.
//
//	seoctl normalize URL...
//	seoctl analyze URL...
//	seoctl group -in records.json
//	seoctl cannibalization -in queries.json
//	seoctl trend -current 120 -previous 100
//
// normalize and analyze read one URL per line from stdin when no arguments
// are given. -in defaults to stdin as well.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/user/seo-monitor/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

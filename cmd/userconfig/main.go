// Command userconfig validates user configuration documents.
//
// Usage:
//
//	userconfig user  [file|-]   validate a single user object
//	userconfig users [file|-]   validate an array of users
//	userconfig demo             run the built-in sample inputs
//
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
// Standard input is read as USERCONFIG_INPUT_FORMAT (json by default).
// The validation Result is written to stdout as JSON; logs go to stderr.
// The exit status is 0 when the input is valid, 1 when it is rejected and
// 2 for usage, configuration or read errors.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Command emcalc evaluates electromagnetism formulas from the command line or
// serves them to MCP clients over stdio.
//
// Usage:
//
//	emcalc list
//	emcalc describe [-format markdown|json]
//	emcalc call [-human] <tool> [json]
//	emcalc eval [-human] <tool> name=expression...
//	emcalc serve
//
// call reads the JSON arguments from stdin when they are not given on the
// command line. eval builds them from expressions, e.g.
//
//	emcalc eval coulomb_force charge1=1e-6 charge2=-2*e \
//	    'position1=[0,0,0]' 'position2=[0.01,0,0]'
//
// Settings come from the environment or a .env file: EMCALC_STRICT_INPUTS,
// EMCALC_SERVER_NAME, EMCALC_LOG_LEVEL and EMCALC_LOG_FORMAT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

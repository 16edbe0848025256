package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/glamgen/internal/cli"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(glamgen.ExitPanic)
		}
	}()

	if os.Getenv("GLAMGEN_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(glamgen.ExitCodeForError(err))
	}
}

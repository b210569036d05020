package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/depmap/internal/cli"
	"github.com/vvka-141/depmap/pkg/depmap"
)

func main() {
	// a crash must still leave a distinct exit code for CI
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(depmap.ExitPanic)
		}
	}()

	if os.Getenv("DEPMAP_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(depmap.ExitCodeForError(err))
	}
}

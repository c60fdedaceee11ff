// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command eeprom fills, verifies and dumps a simulated 24LCxx EEPROM whose
// memory array persists in an image file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tebeka/atexit"
)

// Exit codes.
const (
	EXIT_OK    = 0
	EXIT_ERROR = 1
	EXIT_FAIL  = 2 // Verification ran and found mismatches.
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return EXIT_OK
	case errors.Is(err, errVerifyFailed):
		return EXIT_FAIL
	default:
		return EXIT_ERROR
	}
}

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errVerifyFailed) {
		fmt.Fprintf(os.Stderr, "%v: %v\n", cmd.Name(), err)
	}

	// Runs registered handlers, which save any unsaved image.
	atexit.Exit(exitCode(err))
}

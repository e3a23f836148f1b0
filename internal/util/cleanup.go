package util

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

// SetupInterruptHandler removes half-written files in outputDir on SIGINT or
// SIGTERM and exits with status 1.
func SetupInterruptHandler(outputDir, tempSuffix string) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Println("\nInterrupt received. Cleaning up...")

		CleanupTempFiles(outputDir, tempSuffix)
		fmt.Println("\nExiting due to interrupt.")

		os.Exit(1)
	}()
}

// CleanupTempFiles deletes regular files in dir ending with suffix and
// returns how many were removed.
func CleanupTempFiles(dir, suffix string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	removed := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}

		full := filepath.Join(dir, name)
		if err := os.Remove(full); err != nil {
			fmt.Printf("Error cleaning up %s: %v\n", full, err)
			continue
		}

		fmt.Printf("Removed %s\n", full)
		removed++
	}

	return removed
}

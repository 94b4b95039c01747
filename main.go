/*
XSRTools - Utilities for reconstructing storage images from Samsung XSR1d
flash translation layer dumps.

Copyright © 2025 XSRTools Authors
*/
package main

import (
	"fmt"
	"os"

	"xsrtools/cmd"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Check for version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("XSRTools %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		fmt.Printf("Go Version: %s\n", "go1.24")
		os.Exit(0)
	}

	cmd.Execute()
}

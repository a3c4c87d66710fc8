//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

// Build builds both demo binaries (ridfcat and ridfpull) into ./bin.
func Build() error {
	mg.Deps(BuildRidfcat)
	mg.Deps(BuildRidfpull)
	fmt.Println("Compilation finished")
	return nil
}

func BuildRidfcat() error {
	fmt.Println("Building ridfcat executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/ridfcat", "./cmd/ridfcat")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func BuildRidfpull() error {
	fmt.Println("Building ridfpull executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/ridfpull", "./cmd/ridfpull")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	trackerBin   = "./bin/tracker"
	configPath   = "configs/tracker.toml"
	lintToolMod  = "github.com/golangci/golangci-lint/cmd/golangci-lint@v1.52.2"
	coverageFile = "coverage.out"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds tracker binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", trackerBin, "./cmd")
}

// Run builds and starts the demo session
func Run() error {
	mg.Deps(Build)
	return sh.Run(trackerBin, "-config", configPath)
}

// Test runs unit tests with the race detector
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunV("go", "test", "-race", "-coverprofile", coverageFile, "./...")
}

func Lint() error {
	return sh.Run("go", "run", lintToolMod, "run", "./...")
}

//go:build mage

// Package main contains Mage build targets for investigator developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "investigator"
	cmdPkg  = "./cmd/investigator"

	sampleDir     = "sample"
	sampleAnswers = "cmd/investigator/testdata/answers.yaml"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample generates a project from the test answers file into sample/,
// replacing any previous sample.
func Sample() error {
	mg.Deps(Build)
	if err := os.RemoveAll(sampleDir); err != nil {
		return fmt.Errorf("removing %s: %w", sampleDir, err)
	}
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	return sh.RunV(filepath.Join(binDir, binName), "new",
		"--answers", sampleAnswers,
		"--output-dir", sampleDir,
		"--no-history",
	)
}

// Clean removes build and sample output.
func Clean() error {
	for _, dir := range []string{binDir, sampleDir} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints project metrics: Go production/test LOC and template line count.
func Stats() error {
	prodLines, err := countLines(".", func(p string) bool {
		return strings.HasSuffix(p, ".go") && !strings.HasSuffix(p, "_test.go")
	})
	if err != nil {
		return err
	}
	testLines, err := countLines(".", func(p string) bool { return strings.HasSuffix(p, "_test.go") })
	if err != nil {
		return err
	}
	tmplLines, err := countLines("internal", func(p string) bool { return strings.HasSuffix(p, ".tmpl") })
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines (templates):              %d\n", tmplLines)
	return nil
}

// countLines walks root and counts non-blank lines in files matching keep.
// Hidden and underscore-prefixed directories are skipped.
func countLines(root string, keep func(string) bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !keep(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

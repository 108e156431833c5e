//go:build mage

// Package main contains Mage build targets for migrate developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "migrate"
	cmdPkg  = "./cmd/migrate"
)

// Build compiles the CLI binary into bin/ with the git version stamped in.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := fmt.Sprintf("-X main.version=%s", buildVersion())
	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// buildVersion derives a version string from git, falling back to "dev".
func buildVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

// smokePost is a minimal WordPress-export document for the smoke test.
const smokePost = `<!DOCTYPE html>
<html>
<head><title>Smoke Test</title></head>
<body>
<article class="post category-testing">
  <h1 class="entry-title">Smoke Test</h1>
  <time class="entry-date" datetime="2012-03-15T10:00:00+00:00">March 15, 2012</time>
  <div class="entry-content"><p>It works.</p></div>
</article>
</body>
</html>
`

// Smoke builds the binary and runs it over a one-post fixture export,
// checking that the expected content file appears.
func Smoke() error {
	mg.Deps(Build)

	work, err := os.MkdirTemp("", "migrate-smoke-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(work)

	export := filepath.Join(work, "export")
	postDir := filepath.Join(export, "2012", "03", "smoke-test")
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", postDir, err)
	}
	if err := os.WriteFile(filepath.Join(postDir, "index.html"), []byte(smokePost), 0o644); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}

	site := filepath.Join(work, "site")
	if err := os.MkdirAll(site, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", site, err)
	}

	cmd := exec.Command(filepath.Join(binDir, binName), export, site)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", binName, err)
	}

	want := filepath.Join(site, "content", "posts", "2012", "03", "smoke-test.html")
	if _, err := os.Stat(want); err != nil {
		return fmt.Errorf("expected output %s: %w", want, err)
	}
	fmt.Println("Smoke test passed.")
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binDir); err != nil {
		return fmt.Errorf("removing %s: %w", binDir, err)
	}
	fmt.Println("Cleaned.")
	return nil
}

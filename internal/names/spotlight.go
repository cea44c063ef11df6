package names

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultLookupTimeout bounds each mdls call.
const DefaultLookupTimeout = 5 * time.Second

// appDirs are searched, in order, for <name>.app bundles.
var appDirs = []string{
	"/Applications",
	"/System/Applications",
	"/Applications/Utilities",
}

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Spotlight asks the metadata index for the display name of the bundle
// whose file name matches the last identifier segment.
type Spotlight struct {
	timeout time.Duration
	run     Runner
	exists  func(path string) bool
	dirs    []string
}

// NewSpotlight creates a lookup backed by mdls. A non-positive timeout
// uses DefaultLookupTimeout.
func NewSpotlight(timeout time.Duration) *Spotlight {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &Spotlight{
		timeout: timeout,
		run:     runCommand,
		exists:  pathExists,
		dirs:    appDirs,
	}
}

// Lookup implements Lookup.
func (s *Spotlight) Lookup(ctx context.Context, appID string) (string, error) {
	bundle := lastSegment(appID) + ".app"

	var lastErr error
	for _, dir := range s.dirs {
		path := filepath.Join(dir, bundle)
		if !s.exists(path) {
			continue
		}

		name, err := s.displayName(ctx, path)
		if err != nil {
			lastErr = err
			continue
		}
		if name != "" {
			return name, nil
		}
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", ErrNotFound
}

func (s *Spotlight) displayName(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.run(ctx, "mdls", "-name", "kMDItemDisplayName", "-r", path)
	if err != nil {
		return "", fmt.Errorf("mdls %s: %w", path, err)
	}

	name := strings.TrimSpace(string(out))
	if name == "(null)" {
		return "", nil
	}
	return name, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

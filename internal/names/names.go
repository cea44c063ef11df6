// Package names resolves bundle identifiers to application display names.
package names

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/j-veylop/screentime/internal/logger"
)

// ErrNotFound is returned by a Lookup that has no name for an identifier.
var ErrNotFound = errors.New("display name not found")

// Lookup is one strategy for finding a display name.
type Lookup interface {
	Lookup(ctx context.Context, appID string) (string, error)
}

// Directory resolves display names through a chain of lookups, falling
// back to a guess derived from the identifier. Results are cached for the
// lifetime of the Directory.
type Directory struct {
	mu      sync.Mutex
	lookups []Lookup
	cache   map[string]string
}

// NewDirectory creates a directory that tries lookups in order.
func NewDirectory(lookups ...Lookup) *Directory {
	return &Directory{
		lookups: lookups,
		cache:   make(map[string]string),
	}
}

// Name returns the display name for appID. It never fails: when every
// lookup misses, the last identifier segment is title-cased.
func (d *Directory) Name(ctx context.Context, appID string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if name, ok := d.cache[appID]; ok {
		return name
	}

	name := d.resolve(ctx, appID)
	d.cache[appID] = name
	return name
}

// Cached reports how many identifiers have been resolved so far.
func (d *Directory) Cached() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cache)
}

func (d *Directory) resolve(ctx context.Context, appID string) string {
	for _, l := range d.lookups {
		name, err := l.Lookup(ctx, appID)
		if err == nil && name != "" {
			return name
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			logger.Debug("name lookup failed", "app", appID, "error", err)
		}
	}
	return Guess(appID)
}

// Guess derives a display name from the last dot-separated segment of the
// identifier, e.g. "com.tencent.xinWeChat" becomes "Xinwechat".
func Guess(appID string) string {
	return cases.Title(language.Und).String(lastSegment(appID))
}

func lastSegment(appID string) string {
	if i := strings.LastIndex(appID, "."); i >= 0 {
		return appID[i+1:]
	}
	return appID
}

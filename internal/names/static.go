package names

import "context"

// commonApps maps well-known bundle identifiers to their display names.
var commonApps = map[string]string{
	"com.apple.Safari":            "Safari",
	"com.microsoft.VSCode":        "Visual Studio Code",
	"com.apple.finder":            "Finder",
	"com.apple.systempreferences": "System Settings",
	"com.tencent.xinWeChat":       "WeChat",
	"com.apple.mail":              "Mail",
	"com.apple.music":             "Music",
	"com.apple.tv":                "TV",
	"com.apple.photos":            "Photos",
	"com.apple.notes":             "Notes",
	"com.apple.reminders":         "Reminders",
	"com.apple.calendar":          "Calendar",
	"com.apple.facetime":          "FaceTime",
	"com.apple.messages":          "Messages",
}

// Static looks names up in a fixed table.
type Static struct {
	table map[string]string
}

// NewStatic returns a table lookup seeded with common applications plus
// any extra entries, which take precedence.
func NewStatic(extra map[string]string) *Static {
	table := make(map[string]string, len(commonApps)+len(extra))
	for id, name := range commonApps {
		table[id] = name
	}
	for id, name := range extra {
		table[id] = name
	}
	return &Static{table: table}
}

// Lookup implements Lookup.
func (s *Static) Lookup(_ context.Context, appID string) (string, error) {
	if name, ok := s.table[appID]; ok {
		return name, nil
	}
	return "", ErrNotFound
}

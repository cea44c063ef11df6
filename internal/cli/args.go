package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// presets maps the named windows accepted on the command line to days.
var presets = map[string]int{
	"1":     1,
	"24h":   1,
	"today": 1,
	"7":     7,
	"7d":    7,
	"week":  7,
	"30":    30,
	"30d":   30,
	"month": 30,
}

// UnknownCommandError reports a token that is neither a command nor a
// window.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Token)
}

// ParseDays converts a window token into a number of days. Presets are
// matched case-insensitively; any other token must be a positive integer.
func ParseDays(token string) (int, error) {
	if days, ok := presets[strings.ToLower(token)]; ok {
		return days, nil
	}
	days, err := strconv.Atoi(token)
	if err != nil || days < 1 {
		return 0, &UnknownCommandError{Token: token}
	}
	return days, nil
}

// daysArg returns the window named by the optional first argument,
// defaulting to one day.
func daysArg(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	return ParseDays(args[0])
}

package config

import "strings"

// lineKey returns the key of a key=value line, or "" for blank lines,
// comments and malformed lines.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}

	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}

// Set replaces the value of key in lines, keeping a trailing comment, or
// appends the key. It reports whether an existing line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + formatValue(value)

	for i, line := range lines {
		if lineKey(line) != key {
			continue
		}

		_, old, _ := strings.Cut(line, "=")
		if idx := strings.Index(old, " #"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(old), "\"") {
			entry += " " + strings.TrimSpace(old[idx:])
		}

		lines[i] = entry
		return lines, true
	}

	return append(lines, entry), false
}

// Unset removes every line setting key. It reports whether one was found.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if lineKey(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

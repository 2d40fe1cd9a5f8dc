package sqlite

import (
	"strings"
	"time"
)

// prefixColumns qualifies every column in a comma-separated list with a
// table alias, for use in joined queries.
func prefixColumns(table, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = table + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// parseRFC3339 parses a stored timestamp.
func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

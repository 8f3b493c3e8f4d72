package sqlite

import (
	"strings"
	"time"

	"github.com/fwojciec/orgdocs"
)

// Timestamps are stored as RFC3339 text in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, orgdocs.Errorf(orgdocs.EINTERNAL, "corrupt %s value %q", column, value)
	}
	return t, nil
}

// writePage appends a LIMIT/OFFSET clause. SQLite requires LIMIT before
// OFFSET, so an offset alone is paired with LIMIT -1.
func writePage(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset <= 0 {
		return
	}
	if limit <= 0 {
		limit = -1
	}
	query.WriteString(" LIMIT ?")
	*args = append(*args, limit)
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

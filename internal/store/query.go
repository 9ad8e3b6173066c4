package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

const baseUsersSelect = `SELECT ` + userColumns + ` FROM users`

const countUsersSelect = "SELECT COUNT(*) FROM users"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT and OFFSET for a user
// query. It returns the data query, the count query and their positional
// parameters.
func (q *UserQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	conditions := []string{"is_active"}
	paramIdx := 1

	if q.Role != nil {
		conditions = append(conditions, fmt.Sprintf("role = $%d", paramIdx))
		args = append(args, string(*q.Role))
		paramIdx++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at ASC, id ASC LIMIT %d OFFSET %d",
		baseUsersSelect, whereClause, limit, offset,
	)

	countSQL = countUsersSelect + whereClause

	return dataSQL, countSQL, args
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestUserQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        UserQuery
		wantDataHas  []string
		wantCountSQL string
		wantArgs     []any
	}{
		{
			name:  "empty query uses defaults",
			query: UserQuery{},
			wantDataHas: []string{
				"FROM users WHERE is_active",
				"ORDER BY created_at ASC, id ASC",
				"LIMIT 100",
				"OFFSET 0",
			},
			wantCountSQL: "SELECT COUNT(*) FROM users WHERE is_active",
			wantArgs:     nil,
		},
		{
			name:         "role filter",
			query:        UserQuery{Role: ptr(domain.RoleSupervisor)},
			wantDataHas:  []string{"WHERE is_active AND role = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM users WHERE is_active AND role = $1",
			wantArgs:     []any{"supervisor"},
		},
		{
			name:         "limit above max is capped",
			query:        UserQuery{Limit: 10000},
			wantDataHas:  []string{"LIMIT 500"},
			wantCountSQL: "SELECT COUNT(*) FROM users WHERE is_active",
		},
		{
			name:         "negative offset is clamped",
			query:        UserQuery{Limit: 10, Offset: -5},
			wantDataHas:  []string{"LIMIT 10", "OFFSET 0"},
			wantCountSQL: "SELECT COUNT(*) FROM users WHERE is_active",
		},
		{
			name:         "offset passes through",
			query:        UserQuery{Offset: 200},
			wantDataHas:  []string{"LIMIT 100", "OFFSET 200"},
			wantCountSQL: "SELECT COUNT(*) FROM users WHERE is_active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()
			for _, want := range tt.wantDataHas {
				assert.Contains(t, dataSQL, want)
			}
			assert.Equal(t, tt.wantCountSQL, countSQL)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/donaldgifford/opty-search/internal/api/client"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "fone", max: 10, want: "fone"},
		{name: "exact", in: "fone", max: 4, want: "fone"},
		{name: "long", in: "fone de ouvido bluetooth", max: 10, want: "fone de..."},
		{name: "multibyte", in: "cafeteira elétrica", max: 13, want: "cafeteira ..."},
		{name: "accent kept whole", in: "ação ação ação", max: 7, want: "ação..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}

func TestPrintSearchResult(t *testing.T) {
	t.Parallel()

	res := &domain.SearchResult{
		Query:           "quero um fone barato",
		NormalizedQuery: "fone",
		Products: []domain.Product{
			domain.NewProduct("Fone JBL", "R$ 99,90", "https://produto.mercadolivre.com.br/MLB-1", ""),
			domain.NewProduct("Fone Sony", "R$ 149", "https://produto.mercadolivre.com.br/MLB-2", ""),
		},
		Total:   2,
		Skipped: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, printSearchResult(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "Normalized:  fone")
	assert.Contains(t, out, "2 (skipped 1)")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Fone Sony")
	assert.Contains(t, out, "R$ 99,90")
}

func TestPrintUsersTable(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	users := []domain.User{
		{AuthID: "auth0|1", Email: "ana@example.com", Name: "Ana", Role: domain.RoleSupervisor, CreatedAt: created},
		{AuthID: "auth0|2", Email: "bia@example.com", Name: "Bia", Role: domain.RoleUser, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, printUsersTable(&buf, users))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "AUTH ID")
	assert.Contains(t, lines[1], "supervisor")
	assert.Contains(t, lines[2], "2026-03-01 12:00:00")
}

func TestPrintServiceInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printServiceInfo(&buf, &apiclient.ServiceInfo{
		Name:       "opty-search",
		Version:    "v1.0.0",
		Commit:     "abc123",
		LLMBackend: "ollama",
	}))

	assert.Contains(t, buf.String(), "v1.0.0 (abc123)")
	assert.Contains(t, buf.String(), "ollama")
}

func TestPrintProbeResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printProbeResult(&buf, &apiclient.ProbeResult{LayoutOK: true, Products: 48}))
	assert.Contains(t, buf.String(), "true")
	assert.Contains(t, buf.String(), "48")
	assert.NotContains(t, buf.String(), "Error:")

	buf.Reset()
	require.NoError(t, printProbeResult(&buf, &apiclient.ProbeResult{Error: "results page yielded no products"}))
	assert.Contains(t, buf.String(), "Error:")
}

func TestOutputJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, outputJSON(&buf, []domain.Product{}))
	assert.Equal(t, "[]\n", buf.String())
}

package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *catalogFixture {
	t.Helper()
	f, err := loadFixture(filepath.Join("testdata", "products.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return f
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Products) == 0 {
		t.Fatal("expected products in fixture")
	}
	for _, p := range fixture.Products {
		if p.Title == "" || p.Fraction == "" || p.Link == "" {
			t.Errorf("incomplete fixture product: %+v", p)
		}
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := loadFixture("testdata/missing.json"); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestMatchProducts(t *testing.T) {
	fixture := loadTestFixture(t)

	tests := []struct {
		name string
		term string
		want int
	}{
		{name: "single word", term: "cafeteira", want: 1},
		{name: "all words must match", term: "fone bluetooth", want: 2},
		{name: "case insensitive", term: "JBL", want: 2},
		{name: "no match falls back to all", term: "geladeira", want: len(fixture.Products)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchProducts(fixture.Products, tt.term)
			if len(got) != tt.want {
				t.Errorf("matched=%d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestResultsHandler(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t))
	req := httptest.NewRequest(http.MethodGet, "/fone+bluetooth", http.NoBody)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if n := strings.Count(body, `class="ui-search-layout__item`); n != 2 {
		t.Errorf("containers=%d, want 2", n)
	}
	if !strings.Contains(body, `<span class="andes-money-amount__cents">90</span>`) {
		t.Error("expected cents span for JBL Tune 520BT")
	}
	if !strings.Contains(body, `data-src="https://http2.mlstatic.com/D_Q_NP_jbl-tune-520bt.webp"`) {
		t.Error("expected lazy-loaded image URL in data-src")
	}
}

func TestResultsHandler_UpstreamFailure(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t))
	req := httptest.NewRequest(http.MethodGet, "/erro", http.NoBody)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestQuotedQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Normaliza a seguinte query de busca: 'fone bluetooth'", want: "fone bluetooth"},
		{in: "Normaliza: 'copo d'água'", want: "copo d'água"},
		{in: "sem aspas", want: "sem aspas"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := quotedQuery(tt.in); got != tt.want {
				t.Errorf("quotedQuery()=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "quero um fone bluetooth bom e barato", want: "fone bluetooth"},
		{in: "Olá, gostaria de uma cafeteira!", want: "cafeteira"},
		{in: "iphone 15 pro max com desconto", want: "iphone 15 pro max"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := mockNormalize(tt.in); got != tt.want {
				t.Errorf("mockNormalize()=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestChatHandler(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t))
	body := `{"model":"gpt-4o-mini","messages":[` +
		`{"role":"system","content":"instruções"},` +
		`{"role":"user","content":"Normaliza a seguinte query de busca: 'quero um mouse sem fio'"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("model=%s, want gpt-4o-mini", resp.Model)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("choices=%d, want 1", len(resp.Choices))
	}
	if got := resp.Choices[0].Message.Content; got != "mouse sem fio" {
		t.Errorf("content=%q, want %q", got, "mouse sem fio")
	}
	if resp.Choices[0].FinishReason != "stop" {
		t.Errorf("finish_reason=%s, want stop", resp.Choices[0].FinishReason)
	}
}

func TestChatHandler_InvalidBody(t *testing.T) {
	handler := chatHandler(testLogger())
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader("{"))
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

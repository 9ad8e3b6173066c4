// Package main implements a mock Mercado Livre and OpenAI server for local
// development. It renders results pages from a JSON product fixture in the
// markup the catalog extractor reads, and answers chat completions with a
// keyword-based normalization so no API key is needed.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"
)

type fixtureProduct struct {
	Title    string `json:"title"`
	Fraction string `json:"fraction"`
	Cents    string `json:"cents"`
	Link     string `json:"link"`
	Image    string `json:"image"`
}

type catalogFixture struct {
	Products []fixtureProduct `json:"products"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to product fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture.Products))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock server", "addr", addr,
		"catalog_base_url", fmt.Sprintf("http://localhost:%d/", *port),
		"openai_base_url", fmt.Sprintf("http://localhost:%d/v1", *port),
	)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fixture)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fixture *catalogFixture) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", chatHandler(logger))
	mux.HandleFunc("GET /{term}", resultsHandler(logger, fixture))
	return mux
}

func loadFixture(path string) (*catalogFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f catalogFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

var resultsPage = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>{{.Term}} | MercadoLivre</title></head>
<body>
<ol class="ui-search-layout ui-search-layout--stack">
{{- range .Products}}
  <li class="ui-search-layout__item shops__layout-item">
    <div class="ui-search-result__wrapper">
      {{- if .Image}}
      <img class="ui-search-result-image__element shops__image-element" data-src="{{.Image}}" src="data:image/gif;base64,R0lGODlhAQABAAAAACw=" alt="{{.Title}}">
      {{- end}}
      <a href="{{.Link}}" class="ui-search-link">
        <h3 class="ui-search-item__title shops__item-title">{{.Title}}</h3>
      </a>
      <span class="andes-money-amount">
        <span class="andes-money-amount__currency-symbol">R$</span>
        <span class="andes-money-amount__fraction">{{.Fraction}}</span>
        {{- if .Cents}}<span class="andes-money-amount__cents">{{.Cents}}</span>{{end}}
      </span>
    </div>
  </li>
{{- end}}
</ol>
</body>
</html>
`))

// matchProducts returns the fixture products whose title contains every word
// of term. An unmatched term yields the whole fixture, the way the real
// site falls back to related listings.
func matchProducts(products []fixtureProduct, term string) []fixtureProduct {
	words := strings.Fields(strings.ToLower(term))
	var matched []fixtureProduct
	for _, p := range products {
		title := strings.ToLower(p.Title)
		ok := true
		for _, w := range words {
			if !strings.Contains(title, w) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return products
	}
	return matched
}

func resultsHandler(logger *slog.Logger, fixture *catalogFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.ReplaceAll(r.PathValue("term"), "+", " ")
		if strings.Contains(term, "erro") {
			http.Error(w, "mock upstream failure", http.StatusServiceUnavailable)
			logger.Info("results page failure", "term", term)
			return
		}

		products := matchProducts(fixture.Products, term)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := resultsPage.Execute(w, struct {
			Term     string
			Products []fixtureProduct
		}{Term: term, Products: products}); err != nil {
			logger.Error("rendering results page", "error", err)
			return
		}
		logger.Info("results page", "term", term, "products", len(products))
	}
}

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// fillerWords are dropped by the mock normalizer.
var fillerWords = map[string]bool{
	"olá": true, "ola": true, "oi": true, "quero": true, "queria": true, "gostaria": true,
	"preciso": true, "procuro": true, "de": true, "um": true, "uma": true, "algo": true,
	"pra": true, "para": true, "o": true, "a": true, "e": true, "com": true, "meu": true,
	"bom": true, "boa": true, "barato": true, "barata": true, "legal": true, "produto": true,
}

// quotedQuery returns the text between the first and last single quote of
// the user turn, or the whole turn when it is not quoted.
func quotedQuery(content string) string {
	start := strings.IndexByte(content, '\'')
	end := strings.LastIndexByte(content, '\'')
	if start < 0 || end <= start {
		return content
	}
	return content[start+1 : end]
}

func mockNormalize(query string) string {
	words := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !fillerWords[w] {
			kept = append(kept, w)
		}
	}
	if len(kept) > 4 {
		kept = kept[:4]
	}
	return strings.Join(kept, " ")
}

func chatHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"message": "invalid request body", "type": "invalid_request_error"},
			})
			return
		}

		var user string
		for _, m := range req.Messages {
			if m.Role == "user" {
				user = m.Content
			}
		}
		query := quotedQuery(user)
		term := mockNormalize(query)

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-mock",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": term},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": len(user) / 4, "completion_tokens": len(term) / 4},
		})
		logger.Info("chat completion", "query", query, "term", term)
	}
}

package catalog_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/opty-search/internal/catalog"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestExtractor_Extract_Fixture(t *testing.T) {
	t.Parallel()

	markup, err := os.ReadFile("testdata/search_results.html")
	require.NoError(t, err)

	ext, err := catalog.NewExtractor().Extract(markup)
	require.NoError(t, err)

	want := []domain.Product{
		{
			Title:  "Fone De Ouvido Bluetooth JBL Tune 520BT",
			Price:  "R$ 249,90",
			Link:   "https://produto.mercadolivre.com.br/MLB-1001-fone-jbl-tune-520bt",
			Image:  strPtr("https://http2.mlstatic.com/D_NQ_NP_1001-O.webp"),
			Source: domain.SourceMercadoLivre,
		},
		{
			Title:  "Headphone Sony WH-1000XM5",
			Price:  "R$ 1299",
			Link:   "https://produto.mercadolivre.com.br/MLB-1002-sony-wh1000xm5",
			Image:  strPtr("https://http2.mlstatic.com/D_NQ_NP_1002-O.webp"),
			Source: domain.SourceMercadoLivre,
		},
		{
			Title:  "Fone Com Imagem Inline",
			Price:  "R$ 79,50",
			Link:   "/MLB-1005-fone-inline",
			Image:  nil,
			Source: domain.SourceMercadoLivre,
		},
		{
			Title:  "Adaptador P2 Para Fone",
			Price:  "R$ 0,99",
			Link:   "https://produto.mercadolivre.com.br/MLB-1007",
			Image:  nil,
			Source: domain.SourceMercadoLivre,
		},
		{
			Title:  "Fone Com Fio Básico",
			Price:  "R$ 19",
			Link:   "https://produto.mercadolivre.com.br/MLB-1008",
			Image:  nil,
			Source: domain.SourceMercadoLivre,
		},
	}

	assert.Equal(t, want, ext.Products)
	assert.Equal(t, 8, ext.Containers)
	assert.Equal(t, 3, ext.Skipped)
	assert.Zero(t, ext.Failed)
	assert.LessOrEqual(t, len(ext.Products), ext.Containers)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		markup       string
		wantProducts []domain.Product
		wantSkipped  int
	}{
		{
			name:         "no containers",
			markup:       `<html><body><p>Não há anúncios que correspondam à sua busca.</p></body></html>`,
			wantProducts: []domain.Product{},
		},
		{
			name:         "empty document",
			markup:       ``,
			wantProducts: []domain.Product{},
		},
		{
			name: "primary title wins over generic h3",
			markup: `<ul><li class="ui-search-layout__item">
				<h3>Patrocinado</h3>
				<h3 class="ui-search-item__title shops__item-title">Caixa de Som JBL Go 3</h3>
				<a href="https://produto.mercadolivre.com.br/MLB-1">x</a>
				<span class="andes-money-amount__fraction">199</span>
			</li></ul>`,
			wantProducts: []domain.Product{
				domain.NewProduct("Caixa de Som JBL Go 3", "R$ 199", "https://produto.mercadolivre.com.br/MLB-1", ""),
			},
		},
		{
			name: "empty anchor href is not a link",
			markup: `<ul><li class="ui-search-layout__item">
				<h3>Cafeteira</h3><a href="">x</a>
				<span class="andes-money-amount__fraction">99</span>
			</li></ul>`,
			wantProducts: []domain.Product{},
			wantSkipped:  1,
		},
		{
			name: "blank title is not a title",
			markup: `<ul><li class="ui-search-layout__item">
				<h3>   </h3><a href="/p/1">x</a>
				<span class="andes-money-amount__fraction">99</span>
			</li></ul>`,
			wantProducts: []domain.Product{},
			wantSkipped:  1,
		},
		{
			name: "generic img used when no classed image exists",
			markup: `<ul><li class="ui-search-layout__item">
				<h3>Esteira Elétrica</h3><a href="/p/2">x</a>
				<img src="https://http2.mlstatic.com/esteira.webp">
				<span class="andes-money-amount__fraction">2.499</span>
				<span class="andes-money-amount__cents">00</span>
			</li></ul>`,
			wantProducts: []domain.Product{
				domain.NewProduct("Esteira Elétrica", "R$ 2499,00", "/p/2", "https://http2.mlstatic.com/esteira.webp"),
			},
		},
		{
			name: "empty data-src falls back to src",
			markup: `<ul><li class="ui-search-layout__item">
				<h3>Air Fryer</h3><a href="/p/3">x</a>
				<img class="ui-search-result-image__element" data-src="" src="https://http2.mlstatic.com/airfryer.webp">
				<span class="andes-money-amount__fraction">399</span>
			</li></ul>`,
			wantProducts: []domain.Product{
				domain.NewProduct("Air Fryer", "R$ 399", "/p/3", "https://http2.mlstatic.com/airfryer.webp"),
			},
		},
		{
			name: "missing price",
			markup: `<ul><li class="ui-search-layout__item">
				<h3>Mouse Sem Fio</h3><a href="/p/4">x</a>
			</li></ul>`,
			wantProducts: []domain.Product{},
			wantSkipped:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ext, err := catalog.NewExtractor().Extract([]byte(tt.markup))
			require.NoError(t, err)
			assert.Equal(t, tt.wantProducts, ext.Products)
			assert.Equal(t, tt.wantSkipped, ext.Skipped)
		})
	}
}

func TestExtractor_Extract_PreservesOrder(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("<ol>")
	titles := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	for _, title := range titles {
		b.WriteString(`<li class="ui-search-layout__item"><h3>` + title +
			`</h3><a href="/p/` + title + `">x</a><span class="andes-money-amount__fraction">10</span></li>`)
	}
	b.WriteString("</ol>")

	ext, err := catalog.NewExtractor().Extract([]byte(b.String()))
	require.NoError(t, err)
	require.Len(t, ext.Products, len(titles))
	for i, title := range titles {
		assert.Equal(t, title, ext.Products[i].Title)
	}
}

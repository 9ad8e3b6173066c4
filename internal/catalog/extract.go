package catalog

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/donaldgifford/opty-search/internal/metrics"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// ContainerSelector matches one listing on a Mercado Livre results page.
const ContainerSelector = "li.ui-search-layout__item"

// fieldStrategy resolves one field from a listing container. The boolean is
// false when the strategy found nothing to resolve from.
type fieldStrategy func(node *goquery.Selection) (string, bool)

// Extraction is the outcome of parsing one results page.
type Extraction struct {
	// Products holds fully resolved listings in page order.
	Products []domain.Product
	// Containers is the number of listing containers on the page.
	Containers int
	// Skipped counts containers that did not produce a product.
	Skipped int
	// Failed counts the skipped containers whose resolution faulted.
	Failed int
}

type outcome int

const (
	outcomeIncluded outcome = iota
	outcomeIncomplete
	outcomeFailed
)

// Extractor parses results pages with ranked per-field strategies.
type Extractor struct {
	log    *slog.Logger
	titles []fieldStrategy
	prices []fieldStrategy
	links  []fieldStrategy
	images []fieldStrategy
}

// ExtractorOption configures the Extractor.
type ExtractorOption func(*Extractor)

// WithExtractorLogger sets the logger.
func WithExtractorLogger(l *slog.Logger) ExtractorOption {
	return func(x *Extractor) {
		x.log = l
	}
}

// NewExtractor creates an Extractor for the current Mercado Livre layout.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	x := &Extractor{
		log: slog.Default(),
		titles: []fieldStrategy{
			textOf("h3.ui-search-item__title.shops__item-title"),
			textOf("h3"),
		},
		prices: []fieldStrategy{
			moneyAmount,
		},
		links: []fieldStrategy{
			attrOf("a[href]", "href"),
		},
		images: []fieldStrategy{
			imageOf("img.ui-search-result-image__element"),
			imageOf("img.shops__image-element"),
			imageOf("img"),
		},
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract parses markup and resolves every listing container. A container
// that lacks a title, price or link is skipped, as is one whose resolution
// panics; neither affects the others. An error is returned only when the
// markup cannot be parsed at all.
func (x *Extractor) Extract(markup []byte) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing results page: %w", err)
	}
	return x.ExtractDocument(doc), nil
}

// ExtractDocument resolves the listing containers of an already parsed page.
func (x *Extractor) ExtractDocument(doc *goquery.Document) *Extraction {
	containers := doc.Find(ContainerSelector)
	ext := &Extraction{
		Products:   make([]domain.Product, 0, containers.Length()),
		Containers: containers.Length(),
	}

	containers.Each(func(i int, node *goquery.Selection) {
		p, out := x.resolve(i, node)
		switch out {
		case outcomeIncluded:
			ext.Products = append(ext.Products, p)
		case outcomeFailed:
			ext.Failed++
			ext.Skipped++
		case outcomeIncomplete:
			ext.Skipped++
		}
	})

	metrics.ExtractionProductsTotal.Add(float64(len(ext.Products)))
	if n := ext.Skipped - ext.Failed; n > 0 {
		metrics.ExtractionSkippedTotal.WithLabelValues("incomplete").Add(float64(n))
	}
	if ext.Failed > 0 {
		metrics.ExtractionSkippedTotal.WithLabelValues("failed").Add(float64(ext.Failed))
	}

	return ext
}

func (x *Extractor) resolve(idx int, node *goquery.Selection) (p domain.Product, out outcome) {
	defer func() {
		if r := recover(); r != nil {
			x.log.Debug("listing container faulted", "index", idx, "panic", fmt.Sprint(r))
			p, out = domain.Product{}, outcomeFailed
		}
	}()

	title, ok := firstMatch(node, x.titles)
	if !ok {
		x.log.Debug("listing container skipped", "index", idx, "missing", "title")
		return p, outcomeIncomplete
	}

	price, ok := firstMatch(node, x.prices)
	if !ok {
		x.log.Debug("listing container skipped", "index", idx, "missing", "price")
		return p, outcomeIncomplete
	}

	link, ok := firstMatch(node, x.links)
	if !ok {
		x.log.Debug("listing container skipped", "index", idx, "missing", "link")
		return p, outcomeIncomplete
	}

	// Image never gates inclusion.
	image, _ := firstMatch(node, x.images)

	return domain.NewProduct(title, price, link, image), outcomeIncluded
}

func firstMatch(node *goquery.Selection, strategies []fieldStrategy) (string, bool) {
	for _, s := range strategies {
		if v, ok := s(node); ok {
			return v, true
		}
	}
	return "", false
}

// textOf resolves the whitespace-normalized text of the first element
// matching selector. Empty text counts as not found.
func textOf(selector string) fieldStrategy {
	return func(node *goquery.Selection) (string, bool) {
		el := node.Find(selector).First()
		if el.Length() == 0 {
			return "", false
		}
		text := strings.Join(strings.Fields(el.Text()), " ")
		return text, text != ""
	}
}

func attrOf(selector, attr string) fieldStrategy {
	return func(node *goquery.Selection) (string, bool) {
		v, ok := node.Find(selector).First().Attr(attr)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
}

// moneyAmount renders the andes money component as "R$ <fraction>[,<cents>]".
// The fraction arrives with '.' thousands separators, which are dropped. A
// bare "0" fraction is a layout placeholder, not a price.
func moneyAmount(node *goquery.Selection) (string, bool) {
	frac := node.Find(".andes-money-amount__fraction").First()
	if frac.Length() == 0 {
		return "", false
	}

	fraction := strings.ReplaceAll(strings.TrimSpace(frac.Text()), ".", "")
	cents := strings.TrimSpace(node.Find(".andes-money-amount__cents").First().Text())

	switch {
	case fraction == "":
		return "", false
	case fraction == "0" && cents == "":
		return "", false
	case cents != "":
		return "R$ " + fraction + "," + cents, true
	default:
		return "R$ " + fraction, true
	}
}

// imageOf reports found as soon as an element matches selector, even when
// its URL turns out to be unusable, so later strategies are not consulted.
// Lazy-loaded thumbnails keep the real URL in data-src; inline data: URIs
// are placeholders and resolve to an empty image.
func imageOf(selector string) fieldStrategy {
	return func(node *goquery.Selection) (string, bool) {
		img := node.Find(selector).First()
		if img.Length() == 0 {
			return "", false
		}
		src := strings.TrimSpace(img.AttrOr("data-src", ""))
		if src == "" {
			src = strings.TrimSpace(img.AttrOr("src", ""))
		}
		if strings.HasPrefix(src, "data:") {
			src = ""
		}
		return src, true
	}
}

package search_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/opty-search/internal/catalog"
	catalogMocks "github.com/donaldgifford/opty-search/internal/catalog/mocks"
	"github.com/donaldgifford/opty-search/internal/metrics"
	"github.com/donaldgifford/opty-search/internal/notify"
	notifyMocks "github.com/donaldgifford/opty-search/internal/notify/mocks"
	"github.com/donaldgifford/opty-search/internal/search"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// Probe tests share the layout gauges and therefore do not run in parallel.

func TestNewProbe_Entries(t *testing.T) {
	p, err := search.NewProbe(catalogMocks.NewMockFetcher(t), catalog.NewExtractor(), "", time.Hour, slog.Default())
	require.NoError(t, err)
	assert.Len(t, p.Entries(), 1)
}

func TestProbe_RunOnce(t *testing.T) {
	fixture := loadFixture(t)

	t.Run("layout ok", func(t *testing.T) {
		f := catalogMocks.NewMockFetcher(t)
		f.EXPECT().Fetch(mock.Anything, domain.NormalizedQuery(search.DefaultProbeTerm)).
			Return(fixture, nil).Once()

		p, err := search.NewProbe(f, catalog.NewExtractor(), "", time.Hour, slog.Default())
		require.NoError(t, err)

		n, err := p.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.CatalogLayoutOK), 1e-9)
		assert.InDelta(t, 5.0, testutil.ToFloat64(metrics.CatalogProbeProducts), 1e-9)
	})

	t.Run("layout changed", func(t *testing.T) {
		f := catalogMocks.NewMockFetcher(t)
		f.EXPECT().Fetch(mock.Anything, domain.NormalizedQuery("caixa de som")).
			Return([]byte(`<div class="new-layout"><article>Caixa</article></div>`), nil).Once()

		p, err := search.NewProbe(f, catalog.NewExtractor(), "caixa de som", time.Hour, slog.Default())
		require.NoError(t, err)

		n, err := p.RunOnce(context.Background())
		require.ErrorIs(t, err, search.ErrLayoutChanged)
		assert.Zero(t, n)
		assert.InDelta(t, 0.0, testutil.ToFloat64(metrics.CatalogLayoutOK), 1e-9)
	})

	t.Run("fetch failure leaves layout gauge alone", func(t *testing.T) {
		metrics.CatalogLayoutOK.Set(1)

		f := catalogMocks.NewMockFetcher(t)
		f.EXPECT().Fetch(mock.Anything, mock.Anything).
			Return(nil, &catalog.FetchError{Kind: catalog.ErrUpstreamTimeout}).Once()

		p, err := search.NewProbe(f, catalog.NewExtractor(), "", time.Hour, slog.Default())
		require.NoError(t, err)

		_, err = p.RunOnce(context.Background())
		require.ErrorIs(t, err, catalog.ErrUpstreamTimeout)
		assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.CatalogLayoutOK), 1e-9)
	})
}

func TestProbe_LayoutNotifications(t *testing.T) {
	fixture := loadFixture(t)
	broken := []byte(`<div class="new-layout"><article>Fone</article></div>`)

	f := catalogMocks.NewMockFetcher(t)
	f.EXPECT().Fetch(mock.Anything, mock.Anything).Return(fixture, nil).Once()
	f.EXPECT().Fetch(mock.Anything, mock.Anything).Return(broken, nil).Once()
	f.EXPECT().Fetch(mock.Anything, mock.Anything).Return(broken, nil).Once()
	f.EXPECT().Fetch(mock.Anything, mock.Anything).
		Return(nil, &catalog.FetchError{Kind: catalog.ErrUpstreamUnavailable, StatusCode: 503}).Once()
	f.EXPECT().Fetch(mock.Anything, mock.Anything).Return(fixture, nil).Once()
	f.EXPECT().Fetch(mock.Anything, mock.Anything).Return(fixture, nil).Once()

	n := notifyMocks.NewMockNotifier(t)
	n.EXPECT().NotifyLayout(mock.Anything, mock.MatchedBy(func(ev *notify.LayoutEvent) bool {
		return !ev.Recovered && ev.Err != "" && ev.Term == search.DefaultProbeTerm
	})).Return(nil).Once()
	n.EXPECT().NotifyLayout(mock.Anything, mock.MatchedBy(func(ev *notify.LayoutEvent) bool {
		return ev.Recovered && ev.Products == 5 && !ev.At.IsZero()
	})).Return(nil).Once()

	p, err := search.NewProbe(f, catalog.NewExtractor(), "", time.Hour, slog.Default(),
		search.WithNotifier(n))
	require.NoError(t, err)

	ctx := context.Background()

	// First success from an unknown state is not a recovery.
	_, err = p.RunOnce(ctx)
	require.NoError(t, err)

	// Break, then stay broken: one notification.
	_, err = p.RunOnce(ctx)
	require.ErrorIs(t, err, search.ErrLayoutChanged)
	_, err = p.RunOnce(ctx)
	require.ErrorIs(t, err, search.ErrLayoutChanged)

	// Fetch failures do not count as recovery.
	_, err = p.RunOnce(ctx)
	require.ErrorIs(t, err, catalog.ErrUpstreamUnavailable)

	// Recover, then stay ok: one notification.
	_, err = p.RunOnce(ctx)
	require.NoError(t, err)
	_, err = p.RunOnce(ctx)
	require.NoError(t, err)
}

func TestProbe_NotificationFailureCounted(t *testing.T) {
	f := catalogMocks.NewMockFetcher(t)
	f.EXPECT().Fetch(mock.Anything, mock.Anything).
		Return([]byte(`<html><body></body></html>`), nil).Once()

	n := notifyMocks.NewMockNotifier(t)
	n.EXPECT().NotifyLayout(mock.Anything, mock.Anything).
		Return(errors.New("discord rate limited (429)")).Once()

	p, err := search.NewProbe(f, catalog.NewExtractor(), "", time.Hour, slog.Default(),
		search.WithNotifier(n))
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.NotificationFailuresTotal)

	_, err = p.RunOnce(context.Background())
	require.ErrorIs(t, err, search.ErrLayoutChanged)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.NotificationFailuresTotal), 1e-9)
}

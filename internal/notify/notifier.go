// Package notify delivers operator notifications about the catalog layout
// probe.
package notify

import (
	"context"
	"time"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// LayoutEvent describes a change in whether the Mercado Livre results page
// still yields products.
type LayoutEvent struct {
	Term       domain.NormalizedQuery
	Recovered  bool
	Products   int
	Containers int
	Err        string
	At         time.Time
}

// Notifier sends layout change notifications.
type Notifier interface {
	NotifyLayout(ctx context.Context, ev *LayoutEvent) error
}

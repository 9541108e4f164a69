// Package watcher drives the poll/diff/notify cycle. It is the only owner
// of the per-brand baseline snapshots.
package watcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/amonetti/nocwatch/internal/models"
	"github.com/amonetti/nocwatch/internal/render"
)

// ErrNoBrands is returned when the watcher is started without any brand to track.
var ErrNoBrands = errors.New("no brands selected to track")

// SnapshotFetcher retrieves one brand's current listings. Implementations
// must absorb transport failures and return an empty snapshot instead.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, brand string, category models.Category) models.Snapshot
}

// Notifier delivers one alert message, fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// AlertJournal persists notified batches for operator review.
type AlertJournal interface {
	RecordAlerts(ctx context.Context, alerts []models.Alert) error
}

// Watcher polls the tracked brands and reports listings that appeared since
// the previous cycle.
type Watcher struct {
	log      *slog.Logger
	fetcher  SnapshotFetcher
	notifier Notifier
	journal  AlertJournal // nil disables journaling
	out      io.Writer

	category models.Category
	brands   []string
	interval time.Duration

	// baselines maps brand name to its previous cycle's snapshot. Only the
	// watcher reads or writes it.
	baselines map[string]models.Snapshot
}

// NewWatcher creates a watcher for the given brands. journal may be nil.
func NewWatcher(
	log *slog.Logger,
	fetcher SnapshotFetcher,
	notifier Notifier,
	journal AlertJournal,
	out io.Writer,
	category models.Category,
	brands []string,
	interval time.Duration,
) *Watcher {
	return &Watcher{
		log:       log,
		fetcher:   fetcher,
		notifier:  notifier,
		journal:   journal,
		out:       out,
		category:  category,
		brands:    brands,
		interval:  interval,
		baselines: make(map[string]models.Snapshot, len(brands)),
	}
}

// Run executes poll cycles until ctx is canceled. The first cycle per brand
// only seeds the baseline and never notifies. Cancellation is a clean stop,
// not an error.
func (w *Watcher) Run(ctx context.Context) error {
	const opn = "watcher.Run"
	log := w.log.With("op", opn)

	if len(w.brands) == 0 {
		return ErrNoBrands
	}

	log.InfoContext(ctx, "Monitoring started",
		"category", w.category.String(), "brands", w.brands, "interval", w.interval)

	w.CheckForUpdates(ctx)

	timer := time.NewTimer(w.interval)
	defer timer.Stop()

	for {
		timer.Reset(w.interval)

		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "Monitoring stopped")
			return nil
		case <-timer.C:
		}

		w.CheckForUpdates(ctx)
	}
}

// CheckForUpdates performs one full poll cycle: fetch every brand, then
// diff and report per brand, then replace all baselines with this cycle's
// snapshots. A canceled context discards the in-flight cycle without
// touching the baselines.
func (w *Watcher) CheckForUpdates(ctx context.Context) {
	const opn = "watcher.CheckForUpdates"
	log := w.log.With("op", opn)

	// All snapshots are taken before any diff so every brand is compared
	// against a fully-formed current cycle.
	current := make(map[string]models.Snapshot, len(w.brands))
	for _, brand := range w.brands {
		if ctx.Err() != nil {
			return
		}
		current[brand] = w.fetcher.FetchSnapshot(ctx, brand, w.category)
	}
	if ctx.Err() != nil {
		return
	}

	for _, brand := range w.brands {
		snapshot := current[brand]

		previous, seen := w.baselines[brand]
		if !seen {
			// Baseline cycle for this brand: seed only, never notify.
			log.InfoContext(ctx, "Baseline captured", "brand", brand, "items", len(snapshot.Items))
			continue
		}

		added := NewItems(previous, snapshot)
		if len(added) == 0 {
			log.InfoContext(ctx, "No new listings",
				"brand", brand, "category", w.category.Plural())
			continue
		}

		log.InfoContext(ctx, "New listings detected", "brand", brand, "count", len(added))
		w.report(ctx, brand, added)
	}

	for brand, snapshot := range current {
		w.baselines[brand] = snapshot
	}
}

// report renders one brand's additions to the console, delivers the alert
// message and journals the batch. None of these can fail the cycle.
func (w *Watcher) report(ctx context.Context, brand string, added []models.Item) {
	render.Table(w.out, brand, added)

	w.notifier.Notify(ctx, render.AlertMessage(brand, w.category, added))

	if w.journal == nil {
		return
	}
	if err := w.journal.RecordAlerts(ctx, models.AlertsFromItems(w.category, added)); err != nil {
		w.log.WarnContext(ctx, "Failed to journal alerts", "brand", brand, "error", err)
	}
}

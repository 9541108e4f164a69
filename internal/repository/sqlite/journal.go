package sqlite

import (
	"context"
	"fmt"

	"github.com/amonetti/nocwatch/internal/models"
)

// RecordAlerts appends one row per notified item inside a transaction.
func (r *Repository) RecordAlerts(ctx context.Context, alerts []models.Alert) error {
	const opn = "repository.sqlite.RecordAlerts"

	if len(alerts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil) //nolint:varnamelen // tx its a default naming for transaction
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", opn, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after a successful commit only returns sql.ErrTxDone

	stmt, err := tx.PrepareContext(
		ctx,
		"INSERT INTO alerts (brand, category, model, price, status) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare insert statement: %w", opn, err)
	}
	defer stmt.Close()

	for _, alert := range alerts {
		if _, err = stmt.ExecContext(ctx, alert.Brand, alert.Category, alert.Model, alert.Price, alert.Status); err != nil {
			return fmt.Errorf("%s: failed to insert alert for model %s: %w", opn, alert.Model, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", opn, err)
	}

	return nil
}

// RecentAlerts returns up to limit journal rows, newest first.
func (r *Repository) RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	const opn = "repository.sqlite.RecentAlerts"

	rows, err := r.db.QueryContext(
		ctx,
		"SELECT brand, category, model, price, status, created_at FROM alerts ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get alerts: %w", opn, err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err = rows.Scan(&a.Brand, &a.Category, &a.Model, &a.Price, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan alert: %w", opn, err)
		}
		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return alerts, nil
}

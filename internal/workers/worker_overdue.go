// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vidly/internal/logger"
	"github.com/MKhiriev/vidly/internal/service"
	"github.com/robfig/cron/v3"
)

// OverdueWorker periodically reports open rentals kept longer than
// olderThan. It never modifies rentals.
type OverdueWorker struct {
	rentals   service.RentalService
	schedule  string
	olderThan time.Duration

	cron   *cron.Cron
	logger *logger.Logger
}

// NewOverdueWorker validates schedule and builds the worker. The schedule is
// a six-field cron spec (seconds first) or a descriptor such as "@every 1h",
// evaluated in UTC.
func NewOverdueWorker(rentals service.RentalService, schedule string, olderThan time.Duration, logger *logger.Logger) (*OverdueWorker, error) {
	w := &OverdueWorker{
		rentals:   rentals,
		schedule:  schedule,
		olderThan: olderThan,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		logger: logger,
	}

	if _, err := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(schedule); err != nil {
		return nil, fmt.Errorf("invalid overdue schedule %q: %w", schedule, err)
	}

	return w, nil
}

// Run schedules the scan and blocks until ctx is done, then waits for a
// running scan to finish.
func (w *OverdueWorker) Run(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.schedule, func() { w.Scan(ctx) }); err != nil {
		return fmt.Errorf("error scheduling overdue scan: %w", err)
	}

	w.logger.Info().Str("schedule", w.schedule).Dur("older_than", w.olderThan).Msg("overdue worker started")
	w.cron.Start()

	<-ctx.Done()

	<-w.cron.Stop().Done()
	w.logger.Info().Msg("overdue worker stopped")
	return nil
}

// Scan runs one overdue pass and returns the number of rentals reported.
func (w *OverdueWorker) Scan(ctx context.Context) int {
	overdue, err := w.rentals.ListOverdue(ctx, w.olderThan)
	if err != nil {
		w.logger.Err(err).Msg("overdue scan failed")
		return 0
	}

	for _, o := range overdue {
		w.logger.Warn().
			Str("rental_id", o.Rental.ID).
			Str("customer_id", o.Rental.Customer.ID).
			Str("customer", o.Rental.Customer.Name).
			Str("movie", o.Rental.Movie.Title).
			Time("date_out", o.Rental.DateOut).
			Int("days_out", o.DaysOut).
			Float64("accrued_fee", o.AccruedFee).
			Msg("rental overdue")
	}

	w.logger.Info().Int("count", len(overdue)).Msg("overdue scan finished")
	return len(overdue)
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carloworks/covid-data-api/internal/adapter/upstream"
	"github.com/carloworks/covid-data-api/internal/domain"
	"github.com/carloworks/covid-data-api/internal/filestore"
	"github.com/carloworks/covid-data-api/internal/observability"
)

const worldISO = "World"

// VaccineCycle refreshes the vaccination snapshot and splices vaccination
// fields into the persisted case files. The splice is a deliberate
// read-modify-write against durable state: it reads whatever case snapshot
// is on disk, mutates matching days, and rewrites the touched files.
type VaccineCycle struct {
	checker UpdateChecker
	store   *filestore.Store
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewVaccineCycle wires a vaccination refresh cycle.
func NewVaccineCycle(checker UpdateChecker, store *filestore.Store, logger *slog.Logger, metrics *observability.Metrics) *VaccineCycle {
	return &VaccineCycle{
		checker: checker,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes one vaccination refresh cycle.
func (c *VaccineCycle) Run(ctx context.Context) error {
	start := time.Now()

	csvText, err := c.checker.CheckUpdate(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotModified) {
			c.logger.Info("vaccination data not updated yet")
			c.metrics.CyclesTotal.WithLabelValues("vaccine", "unchanged").Inc()
			return nil
		}
		c.metrics.CyclesTotal.WithLabelValues("vaccine", "error").Inc()
		return fmt.Errorf("vaccine cycle: %w", err)
	}

	rows, err := upstream.ParseVaccineRows(csvText)
	if err != nil {
		c.metrics.CyclesTotal.WithLabelValues("vaccine", "error").Inc()
		return fmt.Errorf("vaccine cycle: %w", err)
	}

	series := domain.NormalizeVaccine(rows)

	if err := c.store.WriteVaccineSeries(series); err != nil {
		c.metrics.CyclesTotal.WithLabelValues("vaccine", "error").Inc()
		return fmt.Errorf("vaccine cycle: %w", err)
	}
	if err := c.store.WriteVaccineLatest(domain.VaccineLatest(series)); err != nil {
		c.metrics.CyclesTotal.WithLabelValues("vaccine", "error").Inc()
		return fmt.Errorf("vaccine cycle: %w", err)
	}

	c.mergeIntoCases(series)

	c.metrics.CyclesTotal.WithLabelValues("vaccine", "updated").Inc()
	c.metrics.CycleDuration.WithLabelValues("vaccine").Observe(time.Since(start).Seconds())
	c.metrics.FilesWritten.WithLabelValues("vaccine").Add(float64(len(series)))
	c.metrics.LastRefreshTime.WithLabelValues("vaccine").SetToCurrentTime()
	c.logger.Info("vaccination snapshot refreshed",
		"entities", len(series),
		"duration", time.Since(start),
	)
	return nil
}

// mergeIntoCases splices vaccination fields into every matching persisted
// case file, plus the matching per-country entry nested inside the World
// file (a separate copy after the disk round trip). A missing case file
// for one entity skips that entity, never the whole merge.
func (c *VaccineCycle) mergeIntoCases(series []*domain.VaccineSeries) {
	world, err := c.store.ReadCaseEntity(worldISO)
	if err != nil {
		c.logger.Warn("world case file unavailable, merging country files only", "error", err)
		world = nil
	}

	for _, s := range series {
		var entity *domain.EntitySeries
		if s.ISO == worldISO {
			if world == nil {
				continue
			}
			entity = world
		} else {
			entity, err = c.store.ReadCaseEntity(s.ISO)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					c.logger.Error("read case file failed", "iso", s.ISO, "error", err)
				}
				continue
			}
		}

		domain.SpliceVaccine(entity.Data, s.Data)
		if err := c.store.WriteCaseEntity(entity); err != nil {
			c.logger.Error("rewrite case file failed", "iso", s.ISO, "error", err)
		}

		if world != nil && s.ISO != worldISO {
			if child := findWorldChild(world, s.ISO); child != nil {
				domain.SpliceVaccine(child.Data, s.Data)
			}
		}
	}

	if world != nil {
		if err := c.store.WriteCaseEntity(world); err != nil {
			c.logger.Error("rewrite world case file failed", "error", err)
		}
	}
	c.logger.Info("vaccination data merged into case files")
}

func findWorldChild(world *domain.EntitySeries, iso string) *domain.ProvinceSeries {
	for _, child := range world.Provinces {
		if child.ISO == iso {
			return child
		}
	}
	return nil
}

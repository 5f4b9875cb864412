// Package dashboard implements the landing page: an aggregate snapshot
// of task counts, the memory total and the system status line. Every
// sub-fetch degrades on its own so the page always renders.
package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/ziggyhome/panel/gateway"
)

const statusPlaceholder = "System status unavailable"

// Stats is the derived aggregate the page renders. It is recomputed
// from scratch on every load; nothing is cached across visits.
type Stats struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	Memories       int
	SystemStatus   string
}

type Overview struct {
	tasks    gateway.TaskGateway
	memories gateway.MemoryGateway
	system   gateway.SystemGateway
	logger   *zap.Logger

	stats  Stats
	loaded bool
}

func New(tasks gateway.TaskGateway, memories gateway.MemoryGateway, system gateway.SystemGateway, logger *zap.Logger) *Overview {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Overview{tasks: tasks, memories: memories, system: system, logger: logger}
}

// Load gathers the aggregate. A failed sub-fetch contributes zeros or
// the status placeholder, never a page-level error.
func (o *Overview) Load(ctx context.Context) {
	stats := Stats{SystemStatus: statusPlaceholder}

	if tasks, err := o.tasks.List(ctx); err == nil {
		stats.TotalTasks = len(tasks)
		for _, t := range tasks {
			if t.Completed {
				stats.CompletedTasks++
			}
		}
		stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks
	} else {
		o.logger.Warn("dashboard task fetch degraded", zap.Error(err))
	}

	if memories, err := o.memories.List(ctx); err == nil {
		stats.Memories = len(memories)
	} else {
		o.logger.Warn("dashboard memory fetch degraded", zap.Error(err))
	}

	if status, err := o.system.Status(ctx); err == nil && status != "" {
		stats.SystemStatus = status
	} else if err != nil {
		o.logger.Warn("dashboard status fetch degraded", zap.Error(err))
	}

	o.stats = stats
	o.loaded = true
}

// CompletionRatio reports completed/total in [0,1]; 0 when empty.
func (o *Overview) CompletionRatio() float64 {
	if o.stats.TotalTasks == 0 {
		return 0
	}
	return float64(o.stats.CompletedTasks) / float64(o.stats.TotalTasks)
}

func (o *Overview) Stats() Stats { return o.stats }
func (o *Overview) Loaded() bool { return o.loaded }

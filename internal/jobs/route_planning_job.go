package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RoutePlanningJob periodically refreshes the suggested courier run over the
// orders waiting for delivery. The result is logged so operators see the
// latest plan without hitting the API; the on-demand endpoint stays the
// source of truth.
type RoutePlanningJob struct {
	handler queries.PlanDeliveryRouteQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRoutePlanningJob creates a job that refreshes the route plan every five minutes.
func NewRoutePlanningJob(handler queries.PlanDeliveryRouteQueryHandler, logger *slog.Logger) *RoutePlanningJob {
	return &RoutePlanningJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "route_planning_job"),
	}
}

// Start begins the periodic route plan refresh.
func (j *RoutePlanningJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		query := queries.NewPlanDeliveryRouteQuery()

		plan, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Route planning job failed", "error", err)
			return
		}

		if len(plan.Stops) == 0 {
			j.logger.InfoContext(ctx, "No deliveries waiting, skipping route plan")
			return
		}

		j.logger.InfoContext(ctx, "Route plan refreshed", "stops", len(plan.Stops), "route", plan.Route)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route planning job started (running every five minutes)")
	return nil
}

// Stop stops the route planning job.
func (j *RoutePlanningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route planning job stopped")
}

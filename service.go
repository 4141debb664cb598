package busfeed

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"

	"github.com/campus-transit/busfeed/config"
	"github.com/campus-transit/busfeed/nextbus"
)

// Service exposes the feed operations plus the multi-route aggregation
// helpers. It holds no mutable state between calls; every fetch builds a
// fresh result set owned by the caller.
type Service struct {
	client         *nextbus.Client
	concurrent     bool
	partialResults bool
}

// NewService builds a Service from the application configuration.
func NewService(cfg config.AppConfig) *Service {
	return &Service{
		client:         nextbus.NewClient(cfg.Feed),
		concurrent:     cfg.Aggregation.Concurrent,
		partialResults: cfg.Aggregation.PartialResults,
	}
}

// RouteConfig fetches the agency's full route configuration.
func (s *Service) RouteConfig(ctx context.Context) ([]nextbus.Route, error) {
	return s.client.FetchRouteConfig(ctx)
}

// VehicleLocations fetches the current vehicle snapshot, optionally scoped
// to one route.
func (s *Service) VehicleLocations(ctx context.Context, routeTag string) ([]nextbus.VehicleLocation, error) {
	return s.client.FetchVehicleLocations(ctx, routeTag)
}

// Predictions fetches predictions for one stop on one route.
func (s *Service) Predictions(ctx context.Context, routeTag, stopTag string) ([]nextbus.StopPredictions, error) {
	return s.client.FetchPredictions(ctx, routeTag, stopTag)
}

// PredictionsForStopID fetches predictions for a stop identifier across
// every route serving it.
func (s *Service) PredictionsForStopID(ctx context.Context, stopID string) ([]nextbus.StopPredictions, error) {
	return s.client.FetchPredictionsForStopID(ctx, stopID)
}

// RoutesServingStop returns the subset of routes whose stop list contains
// stopTag, in the order the routes were given.
func RoutesServingStop(routes []nextbus.Route, stopTag string) []nextbus.Route {
	var serving []nextbus.Route
	for _, r := range routes {
		for _, s := range r.Stops {
			if s.Tag == stopTag {
				serving = append(serving, r)
				break
			}
		}
	}
	return serving
}

// AllPredictionsForStop fetches predictions for stopTag on every route that
// serves it and concatenates the results, preserving route order and each
// route's internal arrival order. Routes without the stop are skipped
// without a request; when no route serves the stop the result is empty, not
// an error ("no data" and "no service" are indistinguishable here).
//
// Fetches run sequentially by default; with Concurrent set they fan out in
// parallel and are reassembled in route order. On a per-route failure the
// default is fail-fast; with PartialResults set the successful routes are
// returned alongside the joined error.
func (s *Service) AllPredictionsForStop(ctx context.Context, routes []nextbus.Route, stopTag string) ([]nextbus.StopPredictions, error) {
	serving := RoutesServingStop(routes, stopTag)
	if len(serving) == 0 {
		return nil, nil
	}
	if s.concurrent {
		return s.predictionsConcurrent(ctx, serving, stopTag)
	}
	return s.predictionsSequential(ctx, serving, stopTag)
}

func (s *Service) predictionsSequential(ctx context.Context, serving []nextbus.Route, stopTag string) ([]nextbus.StopPredictions, error) {
	var all []nextbus.StopPredictions
	var errs []error
	for _, r := range serving {
		preds, err := s.client.FetchPredictions(ctx, r.Tag, stopTag)
		if err != nil {
			if !s.partialResults {
				return nil, err
			}
			log.Warn().Err(err).Str("route", r.Tag).Str("stop", stopTag).
				Msg("Prediction fetch failed, continuing with remaining routes")
			errs = append(errs, err)
			continue
		}
		all = append(all, preds...)
	}
	return all, errors.Join(errs...)
}

func (s *Service) predictionsConcurrent(ctx context.Context, serving []nextbus.Route, stopTag string) ([]nextbus.StopPredictions, error) {
	// iter.MapErr preserves input ordering, so the concatenated output is
	// identical to the sequential path.
	results, err := iter.MapErr(serving, func(r *nextbus.Route) ([]nextbus.StopPredictions, error) {
		return s.client.FetchPredictions(ctx, r.Tag, stopTag)
	})
	if err != nil && !s.partialResults {
		return nil, err
	}
	var all []nextbus.StopPredictions
	for _, preds := range results {
		all = append(all, preds...)
	}
	return all, err
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/campus-transit/busfeed"
	"github.com/campus-transit/busfeed/config"
	"github.com/campus-transit/busfeed/nextbus"
)

func main() {
	busfeed.InitLogging()

	app := &cli.App{
		Name:        "busfeed",
		Description: "Query a NextBus-style real-time transit feed",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to config.yml"},
		},
		Commands: []*cli.Command{
			{
				Name:  "routes",
				Usage: "List the agency's routes with stop and path counts",
				Action: func(c *cli.Context) error {
					svc, err := newService(c)
					if err != nil {
						return err
					}
					routes, err := svc.RouteConfig(c.Context)
					if err != nil {
						return err
					}
					for _, r := range routes {
						fmt.Printf("%-12s %-40s stops=%d directions=%d paths=%d\n",
							r.Tag, r.Title, len(r.Stops), len(r.Directions), len(r.Paths))
					}
					return nil
				},
			},
			{
				Name:  "vehicles",
				Usage: "Show the current vehicle snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "route", Usage: "route tag (all routes when omitted)"},
				},
				Action: func(c *cli.Context) error {
					svc, err := newService(c)
					if err != nil {
						return err
					}
					vehicles, err := svc.VehicleLocations(c.Context, c.String("route"))
					if err != nil {
						return err
					}
					printVehicles(vehicles)
					return nil
				},
			},
			{
				Name:  "predictions",
				Usage: "Show arrival predictions for a stop on one route",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "route", Required: true},
					&cli.StringFlag{Name: "stop", Required: true},
				},
				Action: func(c *cli.Context) error {
					svc, err := newService(c)
					if err != nil {
						return err
					}
					preds, err := svc.Predictions(c.Context, c.String("route"), c.String("stop"))
					if err != nil {
						return err
					}
					printPredictions(preds)
					return nil
				},
			},
			{
				Name:  "arrivals",
				Usage: "Show predictions for a stop across every route serving it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "stop", Required: true, Usage: "stop tag"},
				},
				Action: func(c *cli.Context) error {
					svc, err := newService(c)
					if err != nil {
						return err
					}
					routes, err := svc.RouteConfig(c.Context)
					if err != nil {
						return err
					}
					preds, err := svc.AllPredictionsForStop(c.Context, routes, c.String("stop"))
					if err != nil {
						return err
					}
					if len(preds) == 0 {
						fmt.Println("no arrivals available")
						return nil
					}
					printPredictions(preds)
					return nil
				},
			},
			{
				Name:  "watch",
				Usage: "Poll vehicle locations until interrupted",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "route", Usage: "route tag (all routes when omitted)"},
					&cli.DurationFlag{Name: "interval", Value: busfeed.DefaultPollInterval},
				},
				Action: func(c *cli.Context) error {
					svc, err := newService(c)
					if err != nil {
						return err
					}
					routeTag := c.String("route")
					poller := busfeed.StartPolling(c.Duration("interval"), func(ctx context.Context) error {
						vehicles, err := svc.VehicleLocations(ctx, routeTag)
						if err != nil {
							return err
						}
						log.Info().Int("vehicles", len(vehicles)).Str("route", routeTag).
							Msg("Vehicle snapshot refreshed")
						printVehicles(vehicles)
						return nil
					})

					sigs := make(chan os.Signal, 1)
					signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
					<-sigs
					poller.Stop()
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newService(c *cli.Context) (*busfeed.Service, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		return busfeed.NewService(cfg), nil
	}
	return busfeed.NewService(config.Default()), nil
}

func printVehicles(vehicles []nextbus.VehicleLocation) {
	for _, v := range vehicles {
		fmt.Printf("%-8s route=%-8s dir=%-12s (%.5f, %.5f) heading=%3d speed=%.1fkm/h reported %ds ago\n",
			v.ID, v.RouteTag, v.DirTag, v.Lat, v.Lon, v.Heading, v.SpeedKmHr, v.SecsSinceReport)
	}
}

func printPredictions(preds []nextbus.StopPredictions) {
	for _, sp := range preds {
		fmt.Printf("%s (%s) — %s\n", sp.StopTitle, sp.StopTag, sp.RouteTitle)
		for _, dir := range sp.Directions {
			fmt.Printf("  %s\n", dir.Title)
			for _, p := range dir.Predictions {
				at := time.UnixMilli(p.EpochTime).Format("15:04:05")
				suffix := ""
				if p.IsDeparture {
					suffix = " (departure)"
				}
				if p.AffectedByLayover {
					suffix += " (layover)"
				}
				fmt.Printf("    %2d min (%4ds) at %s vehicle=%s%s\n",
					p.Minutes, p.Seconds, at, p.Vehicle, suffix)
			}
		}
	}
}

// README: CLI for quoting a trip or auditing the fixed price table.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"scandicitytaxi/internal/config"
	"scandicitytaxi/internal/logger"
	"scandicitytaxi/internal/modules/pricing"
)

var errAsymmetric = errors.New("price table has asymmetric routes")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "pricecheck:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pricecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "", "pickup address")
	to := fs.String("to", "", "dropoff address")
	km := fs.Float64("km", 0, "trip distance in km, required when no fixed price applies")
	minutes := fs.Float64("min", 0, "trip duration in minutes, required when no fixed price applies")
	audit := fs.Bool("audit", false, "report routes whose return direction is missing or priced differently")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *audit {
		return runAudit(stdout, *asJSON)
	}
	if *from == "" || *to == "" {
		return errors.New("-from and -to are required (or use -audit)")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(stderr, cfg.Log.Level, cfg.Log.Format)
	svc := pricing.NewService(pricing.Tariff{
		StartFee: cfg.Tariff.StartFee,
		PerKm:    cfg.Tariff.PerKm,
		PerMin:   cfg.Tariff.PerMin,
	}, cfg.Currency, log)

	req := pricing.QuoteRequest{FromAddress: *from, ToAddress: *to}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "km":
			req.DistanceKm = km
		case "min":
			req.DurationMin = minutes
		}
	})

	q, err := svc.Quote(context.Background(), req)
	if err != nil {
		return err
	}
	if *asJSON {
		return json.NewEncoder(stdout).Encode(q)
	}
	fmt.Fprintf(stdout, "%s -> %s: %d %s (%s)\n",
		cityOrUnknown(q.FromCity), cityOrUnknown(q.ToCity), q.Amount.Amount, q.Amount.Currency, q.Source)
	return nil
}

func runAudit(stdout io.Writer, asJSON bool) error {
	asym := pricing.AsymmetricRoutes()
	if asJSON {
		if err := json.NewEncoder(stdout).Encode(asym); err != nil {
			return err
		}
	} else {
		for _, a := range asym {
			if a.ReversePrice == nil {
				fmt.Fprintf(stdout, "%s|%s %d: no return route\n", a.From, a.To, a.Price)
				continue
			}
			fmt.Fprintf(stdout, "%s|%s %d: return priced %d\n", a.From, a.To, a.Price, *a.ReversePrice)
		}
		fmt.Fprintf(stdout, "routes=%d asymmetric=%d\n", len(pricing.Routes()), len(asym))
	}
	if len(asym) > 0 {
		return errAsymmetric
	}
	return nil
}

func cityOrUnknown(c *string) string {
	if c == nil {
		return "?"
	}
	return *c
}

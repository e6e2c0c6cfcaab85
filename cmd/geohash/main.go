// Command geohash computes xkcd-426 geohash coordinates for the graticule
// containing a point on a given date, or the worldwide globalhash.
//
// Usage:
//
//	geohash -lat 68.3 -lon -30.7 -date 2005-05-26
//	geohash -global -date 2008-05-21 -format json
//	geohash -lat 52.5 -lon 13.4 -price 12981.20 -map osm
//
// Without -price the Dow opening price is fetched from the public mirrors;
// DJIA_SOURCES and DJIA_TIMEOUT (or a .env file) override the mirror list
// and the default lookup timeout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cloudmollusc/xkcd-geohash/internal/adapter/djia"
	"github.com/cloudmollusc/xkcd-geohash/internal/config"
	"github.com/cloudmollusc/xkcd-geohash/internal/domain"
	"github.com/cloudmollusc/xkcd-geohash/internal/exitcode"
	"github.com/cloudmollusc/xkcd-geohash/internal/geohash"
	"github.com/cloudmollusc/xkcd-geohash/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "geohash: unexpected failure: %v\n", r)
			code = exitcode.Unexpected
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "geohash: warning: could not load .env: %v\n", err)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "geohash: config: %v\n", err)
		return exitcode.InvalidInput
	}

	fs := flag.NewFlagSet("geohash", flag.ContinueOnError)
	fs.SetOutput(stderr)

	latStr := fs.String("lat", "", "latitude of the point whose graticule is hashed")
	lonStr := fs.String("lon", "", "longitude of the point whose graticule is hashed")
	dateStr := fs.String("date", "", "date to hash, YYYY-MM-DD (default today)")
	global := fs.Bool("global", false, "compute the worldwide globalhash instead of a graticule point")
	price := fs.Float64("price", 0, "Dow opening price override; skips the network lookup")
	format := fs.String("format", "decimal", "output format: decimal, dms, bare, or json")
	mapStyle := fs.String("map", "", "print a map link instead of coordinates: osm or google")
	timeout := fs.Duration("timeout", cfg.DJIATimeout, "per-source timeout for Dow lookups")
	verbose := fs.Bool("verbose", false, "log Dow source traffic to stderr")

	if err := fs.Parse(args); err != nil {
		return exitcode.InvalidInput
	}

	if *global && (*latStr != "" || *lonStr != "") {
		fmt.Fprintln(stderr, "geohash: -lat and -lon cannot be combined with -global")
		return exitcode.InvalidInput
	}
	if !*global && (*latStr == "" || *lonStr == "") {
		fmt.Fprintln(stderr, "geohash: -lat and -lon are required unless -global is set")
		fs.Usage()
		return exitcode.InvalidInput
	}
	switch *format {
	case "", "decimal", "dms", "bare", "json":
	default:
		fmt.Fprintf(stderr, "geohash: unknown format %q\n", *format)
		return exitcode.InvalidInput
	}
	switch *mapStyle {
	case "", "osm", "google":
	default:
		fmt.Fprintf(stderr, "geohash: unknown map style %q\n", *mapStyle)
		return exitcode.InvalidInput
	}
	if *price < 0 {
		fmt.Fprintln(stderr, "geohash: -price must be positive")
		return exitcode.InvalidInput
	}

	day := domain.Today()
	if *dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, *dateStr)
		if err != nil {
			fmt.Fprintf(stderr, "geohash: date must be formatted YYYY-MM-DD, got %q\n", *dateStr)
			return exitcode.InvalidInput
		}
		day = parsed
	}

	var lat, lon float64
	dowDate := domain.ApplicableDowDateGlobal(day)
	if !*global {
		lat, err = strconv.ParseFloat(*latStr, 64)
		if err != nil {
			fmt.Fprintf(stderr, "geohash: -lat must be a number, got %q\n", *latStr)
			return exitcode.InvalidInput
		}
		lon, err = strconv.ParseFloat(*lonStr, 64)
		if err != nil {
			fmt.Fprintf(stderr, "geohash: -lon must be a number, got %q\n", *lonStr)
			return exitcode.InvalidInput
		}

		g, err := domain.GraticuleForPoint(lat, lon)
		if err != nil {
			fmt.Fprintf(stderr, "geohash: %v\n", err)
			return exitcode.InvalidInput
		}
		dowDate = domain.ApplicableDowDate(g, day)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// A manual price is pinned to the dow date the computation will ask for,
	// so the 30W rule still applies.
	var provider domain.PriceProvider
	if *price > 0 {
		provider = domain.NewStaticProvider(map[string]float64{
			dowDate.Format(domain.DateFormat): *price,
		})
	} else {
		sources := cfg.DJIASources
		if len(sources) == 0 {
			sources = djia.DefaultSources()
		}
		provider = djia.NewClient(sources, *timeout, logger, nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var res domain.Result
	if *global {
		res, err = geohash.ComputeGlobal(ctx, day, provider)
	} else {
		res, err = geohash.Compute(ctx, lat, lon, day, provider)
	}
	if err != nil {
		fmt.Fprintf(stderr, "geohash: %v\n", err)
		var unavailable *domain.PriceUnavailableError
		if errors.As(err, &unavailable) {
			return exitcode.PriceUnavailable
		}
		return exitcode.Failure
	}

	logger.Debug("hash computed",
		"date", res.UsedDate.Format(domain.DateFormat),
		"dow_date", res.UsedDowDate.Format(domain.DateFormat),
	)

	if *mapStyle != "" {
		link, err := render.MapURL(res, *mapStyle)
		if err != nil {
			fmt.Fprintf(stderr, "geohash: render: %v\n", err)
			return exitcode.Failure
		}
		fmt.Fprintln(stdout, link)
		return exitcode.OK
	}

	out, err := render.Format(res, *format)
	if err != nil {
		fmt.Fprintf(stderr, "geohash: render: %v\n", err)
		return exitcode.Failure
	}
	fmt.Fprintln(stdout, out)

	return exitcode.OK
}

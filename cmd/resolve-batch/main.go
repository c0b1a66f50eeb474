package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/storewise/category-resolver/catalog"
	"github.com/storewise/category-resolver/config"
	"github.com/storewise/category-resolver/resolver"
	"golang.org/x/sync/errgroup"
)

var usage = strings.TrimSpace(dedent.Dedent(`
	usage: resolve-batch [-concurrency N] [file]

	Reads newline-separated category paths from a file (or stdin) and
	resolves each against the storefront backend. Results are printed as
	"<path>\t<id>" or "<path>\tnot found". Paths within a batch resolve
	concurrently; each resolution still orders its own backend calls.
`))

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var concurrency int
	flag.IntVar(&concurrency, "concurrency", 4, "number of paths resolved in parallel")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Msg("open input")
		}
		defer f.Close()
		in = f
	}

	client := catalog.NewClient(catalog.ClientOpts{
		BaseURL: cfg.BaseURL,
		SiteID:  cfg.SiteID,
		Auth:    cfg.Auth,
	})
	r := resolver.New(client, resolver.WithMode(cfg.Mode))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)

	var resolved, notFound atomic.Int64

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g.Go(func() error {
			match, err := r.Resolve(ctx, parsePath(line))
			if err != nil {
				return fmt.Errorf("resolve %q: %w", line, err)
			}
			if match == nil {
				notFound.Add(1)
				fmt.Printf("%s\tnot found\n", line)
				return nil
			}
			resolved.Add(1)
			fmt.Printf("%s\t%d\n", line, match.CategoryID)
			return nil
		})
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("read input")
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("batch aborted")
	}
	log.Info().
		Int64("resolved", resolved.Load()).
		Int64("notFound", notFound.Load()).
		Msg("batch complete")
}

func parsePath(path string) resolver.PathArgs {
	var args resolver.PathArgs
	parts := strings.Split(path, "/")
	if len(parts) > 0 {
		args.Department = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		args.Category = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		args.Subcategory = strings.TrimSpace(parts[2])
	}
	return args
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/storewise/category-resolver/catalog"
	"github.com/storewise/category-resolver/config"
	"github.com/storewise/category-resolver/resolver"
)

var usage = strings.TrimSpace(dedent.Dedent(`
	usage: resolve-category [-mode classification|generic] [-show-url] <path>

	Resolves a category path against the storefront backend and prints the
	canonical category ID. The path is up to three display names separated
	by slashes, e.g.:

	    resolve-category "Health & Beauty/Skin Care/Moisturizers"

	Configuration is read from CATALOG_BASE_URL, CATALOG_SITE_ID and
	CATALOG_AUTH (env or the config.env file), RESOLVER_MODE sets the
	default mode.
`))

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var modeFlag string
	var showURL bool
	flag.StringVar(&modeFlag, "mode", "", "resolution mode: classification or generic")
	flag.BoolVar(&showURL, "show-url", false, "also print the category's canonical URL")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	switch modeFlag {
	case "":
	case "classification":
		cfg.Mode = resolver.ModeClassification
	case "generic":
		cfg.Mode = resolver.ModeGeneric
	default:
		log.Fatal().Str("mode", modeFlag).Msg("invalid -mode")
	}

	args := parsePath(flag.Arg(0))

	client := catalog.NewClient(catalog.ClientOpts{
		BaseURL: cfg.BaseURL,
		SiteID:  cfg.SiteID,
		Auth:    cfg.Auth,
	})
	r := resolver.New(client, resolver.WithMode(cfg.Mode))

	match, err := r.Resolve(context.Background(), args)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve failed")
	}
	if match == nil {
		fmt.Println("not found")
		os.Exit(1)
	}
	log.Info().Str("source", string(match.Source)).Msg("resolved")
	fmt.Println(match.CategoryID)

	if showURL {
		url, err := r.CanonicalURL(context.Background(), match.CategoryID)
		if err != nil {
			log.Fatal().Err(err).Msg("canonical url lookup failed")
		}
		if url != "" {
			fmt.Println(url)
		}
	}
}

// parsePath splits "department/category/subcategory" into path args. Extra
// segments beyond the third are ignored.
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

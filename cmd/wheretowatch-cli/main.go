// Command wheretowatch-cli looks up where a movie or TV show can be watched
// in a region, talking to the wheretowatch proxy.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amaumene/wheretowatch/internal/config"
	"github.com/amaumene/wheretowatch/internal/i18n"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/internal/prefs"
	"github.com/amaumene/wheretowatch/internal/regions"
	"github.com/amaumene/wheretowatch/internal/search"
	"github.com/amaumene/wheretowatch/internal/services"
	"github.com/amaumene/wheretowatch/pkg/httputil"
	"github.com/amaumene/wheretowatch/pkg/logger"
)

func main() {
	regionFlag := flag.String("region", "", "region code, e.g. US or ES")
	langFlag := flag.String("lang", "", "interface language: en or es")
	proxyFlag := flag.String("proxy", "", "proxy base URL (overrides PROXY_URL)")
	listRegions := flag.Bool("regions", false, "list regions matching the query and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewWithLevel(cfg.LogLevel)

	if *listRegions {
		for _, r := range regions.Search(strings.Join(flag.Args(), " ")) {
			fmt.Printf("%s %s %s\n", r.Code, r.FlagGlyph, r.DisplayName)
		}
		return
	}

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		// Preferences are optional; keep going without persistence.
		log.Warnf("[CLI] preferences unavailable: %v", err)
	} else {
		defer store.Close()
	}

	lang := resolveLanguage(store, *langFlag, log)
	region, ok := resolveRegion(*regionFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n", i18n.T(lang, i18n.UnknownRegion), *regionFlag)
		os.Exit(2)
	}

	proxyURL := cfg.ProxyURL
	if *proxyFlag != "" {
		proxyURL = *proxyFlag
	}
	client := services.NewProxyClient(proxyURL, httputil.NewHTTPClient(cfg.RequestTimeout), log)

	r := &renderer{out: os.Stdout, lang: lang, region: region}
	controller := search.NewController(client, log)
	ctx := context.Background()

	if args := flag.Args(); len(args) > 0 {
		run(ctx, controller, r, strings.Join(args, " "), bufio.NewReader(os.Stdin))
		return
	}

	r.printf("%s\n%s\n", i18n.T(lang, i18n.AppName), i18n.T(lang, i18n.Tagline))
	in := bufio.NewReader(os.Stdin)
	for {
		r.printf("\n%s ", i18n.T(lang, i18n.SearchPrompt))
		line, err := in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			run(ctx, controller, r, line, in)
		}
		if err != nil {
			return
		}
		controller.NewSearch()
	}
}

// run drives one lookup: search, optional disambiguation, then the detail.
func run(ctx context.Context, c *search.Controller, r *renderer, query string, in *bufio.Reader) {
	query = search.ReleaseQuery(query)
	r.printf("%s\n", i18n.T(r.lang, i18n.Searching))

	snap := c.Submit(ctx, query)
	if snap.State == search.StateAwaitingDisambiguation {
		r.choices(snap.Results)
		choice, ok := pick(in, r, len(snap.Results))
		if !ok {
			c.NewSearch()
			return
		}
		snap = c.Select(ctx, snap.Results[choice])
	}

	switch snap.State {
	case search.StateShowingDetail:
		r.detail(snap.Detail)
	case search.StateIdle:
		r.signal(snap.Signal)
	}
}

// pick reads a 1-based choice. An empty line, EOF or an invalid number
// cancels.
func pick(in *bufio.Reader, r *renderer, n int) (int, bool) {
	r.printf("%s", i18n.T(r.lang, i18n.SelectPrompt))
	line, _ := in.ReadString('\n')
	i, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func resolveLanguage(store *prefs.Store, flagValue string, log logger.Logger) i18n.Language {
	if lang, ok := i18n.Parse(flagValue); ok {
		if store != nil {
			if err := store.SetLanguage(string(lang)); err != nil {
				log.Warnf("[CLI] failed to save language: %v", err)
			}
		}
		return lang
	}
	if flagValue != "" {
		log.Warnf("[CLI] unsupported language %q", flagValue)
	}

	if store != nil {
		saved, ok, err := store.Language()
		if err != nil {
			log.Warnf("[CLI] failed to read language: %v", err)
		}
		if lang, valid := i18n.Parse(saved); ok && valid {
			return lang
		}
	}

	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	return i18n.Detect(locale)
}

func resolveRegion(flagValue string) (models.Region, bool) {
	if flagValue == "" {
		return regions.Default(), true
	}
	return regions.Lookup(flagValue)
}

// Command wayfarer runs the polling web crawler.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayfarer-crawl/wayfarer/internal/config"
	rulesconfig "github.com/wayfarer-crawl/wayfarer/internal/config/rules"
	"github.com/wayfarer-crawl/wayfarer/internal/crawl"
	wferrors "github.com/wayfarer-crawl/wayfarer/internal/errors"
	"github.com/wayfarer-crawl/wayfarer/internal/httpclient"
	"github.com/wayfarer-crawl/wayfarer/internal/log"
	"github.com/wayfarer-crawl/wayfarer/internal/robots"
	"github.com/wayfarer-crawl/wayfarer/internal/scheduler"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a fatal run error to a process exit status: 2 for the
// scheduler's root-URL-set-empty precondition, 1 for everything else
// (configuration, initialization, and transport failures alike).
func exitCode(err error) int {
	var schedErr *wferrors.Error
	if errors.As(err, &schedErr) && schedErr.Kind == wferrors.KindScheduler {
		return 2
	}
	return 1
}

func newRootCommand() *cobra.Command {
	var routePath string
	var pollingPath string
	var debug bool

	cmd := &cobra.Command{
		Use:   "wayfarer",
		Short: "A polite, rule-driven recursive web crawler.",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start polling from the configured root URLs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), routePath, pollingPath, debug)
		},
	}
	runCmd.Flags().StringVar(&routePath, "route", "./config/route.toml", "Path to the route rules TOML file.")
	runCmd.Flags().StringVar(&pollingPath, "polling", "./config/polling.toml", "Path to the polling rules TOML file.")
	runCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging.")

	cmd.AddCommand(runCmd)
	return cmd
}

func run(parent context.Context, routePath, pollingPath string, debug bool) error {
	logger := log.New(debug)

	logger.Infof("parsing rules: route=%s polling=%s", routePath, pollingPath)

	route, err := rulesconfig.LoadRoute(routePath)
	if err != nil {
		return fmt.Errorf("loading route rules: %w", err)
	}
	polling, err := rulesconfig.LoadPolling(pollingPath)
	if err != nil {
		return fmt.Errorf("loading polling rules: %w", err)
	}

	cfg := config.Default()
	cfg.UserAgent = polling.UserAgent
	cfg.ProxyURL = polling.Proxy
	if polling.Time.RequestTimeoutMS > 0 {
		cfg.RequestTimeout = time.Duration(polling.Time.RequestTimeoutMS) * time.Millisecond
	}
	cfg.MaxRedirects = int(polling.Redirections.MaxRedirects())

	fetcher, err := httpclient.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("building HTTP client: %w", err)
	}

	var robotsCache *robots.Cache
	if route.FollowRobotsExclusionProtocol {
		robotsCache = robots.NewCache(fetcher, logger)
	}

	crawler, err := crawl.NewCrawler(fetcher, robotsCache, polling.UserAgent)
	if err != nil {
		return fmt.Errorf("building crawler: %w", err)
	}

	sched := scheduler.New(crawler, route, polling, logger)

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Infof("starting polling")

	if err := sched.Run(ctx); err != nil {
		return fmt.Errorf("polling stopped: %w", err)
	}
	return nil
}

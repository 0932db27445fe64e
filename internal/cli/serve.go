package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuradeck/slidekit/internal/api"
	"github.com/neuradeck/slidekit/pkg/archive"
	"github.com/neuradeck/slidekit/pkg/jobs"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURL string
		mongoDB  string
		jobTTL   time.Duration
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the slidekit HTTP API",
		Long: `Run the slidekit HTTP API.

The server composes layouts asynchronously: POST /v1/layouts answers 202
with a job id to poll on GET /v1/jobs/{id}. Jobs live in memory unless
--redis (or SLIDEKIT_REDIS_URL) points at a Redis instance. Finished
layouts can be kept in a Mongo archive with --mongo (or SLIDEKIT_MONGO_URL);
without it the archive endpoints answer 501.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := serveConfig{
				addr:     addr,
				redisURL: envOr(redisURL, "SLIDEKIT_REDIS_URL"),
				mongoURL: envOr(mongoURL, "SLIDEKIT_MONGO_URL"),
				mongoDB:  mongoDB,
				jobTTL:   jobTTL,
				noCache:  noCache,
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis address for the job store (env: SLIDEKIT_REDIS_URL)")
	cmd.Flags().StringVar(&mongoURL, "mongo", "", "Mongo URI for the layout archive (env: SLIDEKIT_MONGO_URL)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", archive.DefaultDatabase, "Mongo database for the layout archive")
	cmd.Flags().DurationVar(&jobTTL, "job-ttl", jobs.DefaultTTL, "how long finished jobs stay pollable")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// serveConfig collects the resolved serve flags.
type serveConfig struct {
	addr     string
	redisURL string
	mongoURL string
	mongoDB  string
	jobTTL   time.Duration
	noCache  bool
}

// runServe wires the stores and runs the HTTP server until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg serveConfig) error {
	runner, err := c.newRunner(cfg.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	jobStore, jobsBackend, err := c.newJobStore(ctx, cfg.redisURL)
	if err != nil {
		return err
	}
	defer jobStore.Close()

	archiveStore, archiveBackend, err := c.newArchiveStore(ctx, cfg.mongoURL, cfg.mongoDB)
	if err != nil {
		return err
	}
	if archiveStore != nil {
		defer archiveStore.Close()
	}

	srv := api.New(api.Config{
		Runner:  runner,
		Jobs:    jobStore,
		Archive: archiveStore,
		Logger:  c.Logger,
		JobTTL:  cfg.jobTTL,
	})

	printInfo("Serving the %s API", appName)
	printKeyValue("address", StyleLink.Render(serveURL(cfg.addr)))
	printKeyValue("jobs", jobsBackend)
	printKeyValue("archive", archiveBackend)
	printNewline()

	return srv.ListenAndServe(ctx, cfg.addr)
}

// newJobStore picks the job store backend: Redis when an address is given,
// in-process memory otherwise.
func (c *CLI) newJobStore(ctx context.Context, redisURL string) (jobs.Store, string, error) {
	if redisURL == "" {
		return jobs.NewMemoryStore(), "memory", nil
	}

	prog := newProgress(c.Logger)
	store, err := jobs.NewRedisStore(ctx, redisURL)
	if err != nil {
		return nil, "", fmt.Errorf("connect job store: %w", err)
	}
	prog.done(fmt.Sprintf("Connected to Redis at %s", redisURL))

	return store, "redis (" + redisURL + ")", nil
}

// newArchiveStore connects the Mongo layout archive when a URI is given.
// Without one the archive endpoints answer 501.
func (c *CLI) newArchiveStore(ctx context.Context, mongoURL, db string) (archive.Store, string, error) {
	if mongoURL == "" {
		return nil, "disabled", nil
	}

	prog := newProgress(c.Logger)
	store, err := archive.NewMongoStore(ctx, mongoURL, db)
	if err != nil {
		return nil, "", fmt.Errorf("connect archive: %w", err)
	}
	prog.done("Connected to MongoDB")

	return store, "mongo (" + db + ")", nil
}

// serveURL renders a clickable URL for the listen address.
func serveURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

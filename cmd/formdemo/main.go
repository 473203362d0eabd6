// Command formdemo serves a form definition over HTTP.
//
//	formdemo serve          run the server (default)
//	formdemo check FILE...  validate YAML form definitions
//	formdemo version        print the version
//
// The server is configured by FORMDEMO_* environment variables and an
// optional .env file:
//
//	FORMDEMO_ADDR       listen address (default :8080)
//	FORMDEMO_SCHEMA     path to a YAML form definition (default: built-in sign-up form)
//	FORMDEMO_MODE       form transport: plain, htmx or datastar (default plain)
//	FORMDEMO_REDIRECT   redirect target after an accepted submission
//	FORMDEMO_ENV        development or production
//	FORMDEMO_LOG_LEVEL  debug, info, warn or error
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

//go:embed signup.yaml
var defaultSchema []byte

// version is set at build time.
var version = "dev"

type appConfig struct {
	httpserver.Config

	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	Schema   string `env:"SCHEMA"`
	Mode     string `env:"MODE" envDefault:"plain"`
	Redirect string `env:"REDIRECT"`
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "formdemo: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formdemo",
		Short:         "Serve and validate YAML form definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(serveCmd(), checkCmd(), versionCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the demo server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate form definition files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				def, err := schema.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (form %q, %d inputs)\n", path, def.Name, len(def.Inputs))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d definitions invalid", failed, len(args))
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "formdemo %s\n", version)
		},
	}
}

func serve(parent context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg, config.WithPrefix("FORMDEMO_")); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "formdemo"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(submissionID, requestID),
	)

	def, err := loadDefinition(cfg.Schema)
	if err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	srv := httpserver.New(cfg.Config, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(cfg, def, log, reg))
}

func loadDefinition(path string) (*schema.Definition, error) {
	if path == "" {
		return schema.Parse(defaultSchema)
	}
	return schema.Load(path)
}

func newRouter(cfg appConfig, def *schema.Definition, log *slog.Logger, reg *prometheus.Registry) http.Handler {
	action := def.Action
	if action == "" {
		action = "/"
	}

	opts := []formhttp.Option{
		formhttp.WithLogger(log),
		formhttp.WithMetrics(formhttp.NewMetrics(reg, "formdemo")),
		formhttp.WithAccept(func(ctx context.Context, data form.Values) error {
			log.DebugContext(ctx, "accepted data", slog.Any("data", data))
			return nil
		}),
	}
	if attrs := formAttrs(cfg.Mode, action); attrs != nil {
		opts = append(opts, formhttp.WithFormAttrs(attrs))
	}
	if cfg.Redirect != "" {
		opts = append(opts, formhttp.WithRedirect(cfg.Redirect))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	formhttp.Mount(r, action, formhttp.New(def, opts...))
	return r
}

func formAttrs(mode, action string) templ.Attributes {
	switch mode {
	case "htmx":
		return formhttp.HTMXAttrs(action)
	case "datastar":
		return formhttp.DataStarAttrs(action)
	default:
		return nil
	}
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func submissionID(ctx context.Context) (slog.Attr, bool) {
	id, ok := form.SubmissionID(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.SubmissionID(id), true
}

func requestID(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hanpama/graphdoc/internal/eventbus"
	"github.com/hanpama/graphdoc/internal/metrics"
	"github.com/hanpama/graphdoc/internal/otel"
	"github.com/hanpama/graphdoc/internal/server"
	"github.com/hanpama/graphdoc/internal/today"
)

const rootUsage = `graphdoc — typed GraphQL response documents & resolver service

USAGE:
  graphdoc <command> [flags]

COMMANDS:
  serve            Run the HTTP GraphQL endpoint over the sample service
  help             Show help for any command
`

const serveUsage = `serve FLAGS:
  -server.addr <addr>       HTTP listen address (default: :8080)
  -server.pretty            Pretty-print JSON responses
  -server.timeout <dur>     Per-request timeout, e.g. 10s (default: 10s)
  -server.cors <origin>     Allowed CORS origin. Repeatable
  -metrics                  Expose Prometheus metrics on /metrics (default: true)
  -otel.endpoint <addr>     OTLP collector endpoint
  -otel.service <name>      OpenTelemetry service name (default: graphdoc)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("graphdoc", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	switch remaining[0] {
	case "serve":
		return cmdServe(remaining[1:])
	case "help":
		return cmdHelp(remaining[1:])
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", remaining[0])
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "serve":
		fmt.Print(serveUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdServe(args []string) error {
	addr := ":8080"
	pretty := false
	timeout := 10 * time.Second
	enableMetrics := true
	otelEndpoint := ""
	otelService := "graphdoc"
	var corsOrigins stringListFlag

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&addr, "server.addr", addr, "HTTP listen address")
	fs.BoolVar(&pretty, "server.pretty", pretty, "Pretty-print JSON responses")
	fs.DurationVar(&timeout, "server.timeout", timeout, "Per-request timeout")
	fs.Var(&corsOrigins, "server.cors", "Allowed CORS origin")
	fs.BoolVar(&enableMetrics, "metrics", enableMetrics, "Expose Prometheus metrics")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, serveUsage)
		return err
	}

	eventbus.Use(eventbus.New())

	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	svc := today.NewService()
	opts := []server.Option{
		server.WithTimeout(timeout),
		server.WithMutation(svc.Mutation()),
	}
	if pretty {
		opts = append(opts, server.WithPretty())
	}
	if len(corsOrigins) > 0 {
		opts = append(opts, server.WithCORS(corsOrigins...))
	}
	handler := server.New(svc.Query(), opts...)

	mux := http.NewServeMux()
	mux.Handle("/graphql", handler)
	if enableMetrics {
		mux.Handle("/metrics", metrics.Setup(nil))
	}

	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/oauth2"

	"github.com/analyticsops/uaconf/internal/config"
	"github.com/analyticsops/uaconf/internal/errs"
	"github.com/analyticsops/uaconf/internal/platform/analytics"
	"github.com/analyticsops/uaconf/internal/reconcile"
	"github.com/analyticsops/uaconf/internal/ui"
)

// tokenEnv names the environment variable carrying the Management API
// access token.
const tokenEnv = "UACONF_TOKEN"

// Reconciler interface for testing - matches reconcile.Reconciler.
type Reconciler interface {
	Reconcile(ctx context.Context, desc *config.Description) (*reconcile.Result, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadDescription loads a description tree from file.
	loadDescription = config.LoadFile

	// lookupToken reads the API token from the environment.
	lookupToken = func() string {
		return os.Getenv(tokenEnv)
	}

	// newAPIClient creates the Management API client from a token.
	newAPIClient = func(ctx context.Context, token string) analytics.Client {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		return analytics.NewRealClient(ctx, ts)
	}

	// newReconciler creates the reconciler driving a description tree.
	newReconciler = func(api analytics.Client, obs reconcile.Observer) Reconciler {
		return reconcile.New(api, reconcile.WithObserver(obs))
	}

	// writeMetricsTextfile dumps the gathered metric families to a file.
	writeMetricsTextfile = func(path string) error {
		return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
	}

	// colorOutput reports whether styled output should be used.
	colorOutput = ui.IsInteractiveTTY

	// stdout and stderr are the output streams (for testing injection).
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ApplyOptions are the flag values of the apply command.
type ApplyOptions struct {
	ConfigPath      string
	Verbose         bool
	MetricsTextfile string
}

// Apply loads a description file and reconciles it against the remote
// account: resolve or insert the web property, then custom metrics, custom
// dimensions, and views with their goals, in that order. The summary of
// outcomes is printed regardless of success; on failure the error carries
// the partial progress context.
func Apply(ctx context.Context, opts ApplyOptions) error {
	desc, err := loadDescription(opts.ConfigPath)
	if err != nil {
		return errs.Wrap("apply", err)
	}

	token := lookupToken()
	if token == "" {
		return errs.Wrap("apply", fmt.Errorf("%s is not set", tokenEnv))
	}

	api := newAPIClient(ctx, token)
	r := newReconciler(api, newObserver(opts.Verbose))

	res, rerr := r.Reconcile(ctx, desc)
	if res != nil {
		ui.NewRenderer(stdout, colorOutput()).Summary(res.Summary)
	}

	if opts.MetricsTextfile != "" {
		if err := writeMetricsTextfile(opts.MetricsTextfile); err != nil {
			fmt.Fprintf(stderr, "warning: failed to write metrics textfile: %v\n", err)
		}
	}

	if rerr != nil {
		return failure("apply", rerr, opts.Verbose)
	}
	return nil
}

// newObserver builds the event observer the reconciler reports through:
// key=value lines on stderr, per-item progress only when verbose.
func newObserver(verbose bool) reconcile.Observer {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	log := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(stderr, args)
	}, funcr.Options{Verbosity: verbosity})
	return reconcile.NewLogrObserver(log)
}

// failure wraps err with the handler marker and, when verbose, renders the
// full causal chain to stderr before returning.
func failure(op string, err error, verbose bool) error {
	wrapped := errs.Wrap(op, err)
	if verbose {
		var se *errs.ServiceError
		if errors.As(wrapped, &se) {
			fmt.Fprintln(stderr, se.Verbose())
		}
	}
	return wrapped
}

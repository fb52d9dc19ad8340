// Package cli implements shopctl, a terminal client for the shop backend
// that keeps its session in a local SQLite file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/credentials"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/seller"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/shopper"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/resolver"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/config"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/db"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/kv"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
)

// InstallationID names the single installation a CLI state file holds.
const InstallationID = "local"

var ErrNotLoggedIn = errors.New("not logged in: run `shopctl login` first")

// Options are the root flags.
type Options struct {
	APIBaseURL string
	StatePath  string
	Secret     string
	Verbose    bool
}

// DefaultOptions reads the same environment the server does, plus
// SHOPCTL_STATE for the state file location.
func DefaultOptions() Options {
	cfg := config.Load()
	state := os.Getenv("SHOPCTL_STATE")
	if state == "" {
		if home, err := os.UserHomeDir(); err == nil {
			state = filepath.Join(home, ".storefront", "state.db")
		} else {
			state = "state.db"
		}
	}
	return Options{APIBaseURL: cfg.APIBaseURL, StatePath: state, Secret: cfg.StoreSecret}
}

// env is what every command runs against. It is built after flag parsing.
type env struct {
	db      *db.DB
	backend kv.Backend
	inst    *auth.Installation
	creds   *credentials.Service
}

func (e *env) close(ctx context.Context) error {
	if e == nil || e.backend == nil {
		return nil
	}
	return e.backend.Close(ctx)
}

func openEnv(ctx context.Context, opts Options) (*env, error) {
	if dir := filepath.Dir(opts.StatePath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	handle, err := db.Open(ctx, db.DriverSQLite, opts.StatePath)
	if err != nil {
		return nil, err
	}
	backend, err := kv.New(kv.Config{Driver: kv.DriverSQLite, Secret: opts.Secret}, kv.Dependencies{DB: handle})
	if err != nil {
		_ = handle.Close()
		return nil, err
	}

	client := api.New(opts.APIBaseURL)
	chain := provider.NewChain(shopper.New(client), seller.New(client))
	manager := auth.NewManager(backend, client, chain.Strategies(), resolver.NewRoleResolver(), nil)

	return &env{
		db:      handle,
		backend: backend,
		inst:    manager.Open(ctx, InstallationID),
		creds:   credentials.NewService(client),
	}, nil
}

// runner owns the state database for one shopctl invocation.
type runner struct {
	opts Options
	env  *env
}

// close releases the state database. It is safe to call more than once.
func (r *runner) close(ctx context.Context) error {
	return r.env.close(ctx)
}

// command builds the command tree. The env is opened after flag parsing and
// stays open until close, whether or not the command succeeded.
func (r *runner) command() *cobra.Command {
	opts := &r.opts

	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Shop from the terminal",
		Long:          "shopctl signs in to the shop backend and manages shopping state from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetOutput(cmd.ErrOrStderr())
			level := "warn"
			if opts.Verbose {
				level = "debug"
			}
			logger.Init(level)

			e, err := openEnv(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			r.env = e
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.APIBaseURL, "api", opts.APIBaseURL, "shop backend base URL, including /api")
	root.PersistentFlags().StringVar(&opts.StatePath, "state", opts.StatePath, "path of the local session database")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log API calls to stderr")

	get := func() *env { return r.env }
	root.AddCommand(
		newLoginCmd(get),
		newLogoutCmd(get),
		newWhoamiCmd(get),
		newRegisterCmd(get),
		newProductsCmd(get),
		newProductCmd(get),
		newCartCmd(get),
		newWishlistCmd(get),
		newAddressCmd(get),
		newCheckoutCmd(get),
		newOrdersCmd(get),
	)
	return root
}

// Execute runs one shopctl invocation and always closes the state database.
func Execute(ctx context.Context, opts Options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	r := &runner{opts: opts}
	return r.execute(ctx, args, stdin, stdout, stderr)
}

func (r *runner) execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := r.command()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := r.close(context.WithoutCancel(ctx)); err == nil {
		err = cerr
	}
	return err
}

// ExecuteContext runs shopctl with the process arguments.
func ExecuteContext(ctx context.Context) error {
	return Execute(ctx, DefaultOptions(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// requireAuth mirrors the storefront guard for terminal use.
func requireAuth(e *env) error {
	if !e.inst.Controller.Ready() {
		return errors.New(auth.MsgStoreUnavailable)
	}
	if !e.inst.Controller.Session().IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

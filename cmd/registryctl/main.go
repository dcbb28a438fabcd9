package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/internal/workers"
	"github.com/MKhiriev/go-employee-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		os.Exit(1)
	}
}

// servicesFactory opens the client services for one command. The returned
// func drains pending activity writes and closes the session store.
type servicesFactory func(ctx context.Context) (*service.ClientServices, func(), error)

type cli struct {
	overrides   config.StructuredConfig
	newServices servicesFactory
	logger      *logger.Logger
}

func newCLI() *cli {
	c := &cli{logger: logger.NewCLILogger("registryctl")}
	c.newServices = c.openServices
	return c
}

func (c *cli) openServices(ctx context.Context) (*service.ClientServices, func(), error) {
	cfg, err := config.LoadClientConfig(&c.overrides)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, c.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create backend adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, c.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}

	dispatcher := workers.NewActivityDispatcher(cfg.Workers.ActivityQueueSize, c.logger)
	bg := workers.NewWorkers(dispatcher)
	bg.Run()

	done := func() {
		bg.Stop()
		if err := storages.Close(); err != nil {
			c.logger.Err(err).Str("func", "cli.openServices").Msg("failed to close session store")
		}
	}

	return service.NewClientServices(storages, backend, dispatcher, c.logger), done, nil
}

// withServices adapts run to a cobra RunE that opens the services first.
func (c *cli) withServices(run func(cmd *cobra.Command, args []string, s *service.ClientServices) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, done, err := c.newServices(cmd.Context())
		if err != nil {
			return err
		}
		defer done()

		return run(cmd, args, s)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "registryctl",
		Short:        "Employee registry command line client",
		Long:         `registryctl manages the employee registry from scripts: accounts, employees, activity logs and the admin dashboard.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.overrides.JSONFilePath, "config", "c", "", "config file path")
	flags.StringVar(&c.overrides.Adapter.HTTPAddress, "server", "", "backend base URL")
	flags.DurationVar(&c.overrides.Adapter.RequestTimeout, "timeout", 0, "backend request timeout")
	flags.StringVar(&c.overrides.Storage.Session.DSN, "session", "", "session store DSN (memory://, json://, sqlite://, bolt://)")

	root.AddCommand(
		newRegisterCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newEmployeesCmd(c),
		newLogsCmd(c),
		newDashboardCmd(c),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "registryctl version %s\n", info.Version)
			fmt.Fprintf(out, "  commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  built:  %s\n", info.Date)
		},
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/domenicocinque/hooklint-go/internal/app"
	"github.com/domenicocinque/hooklint-go/internal/config"
	"github.com/domenicocinque/hooklint-go/internal/manifest"
	"github.com/domenicocinque/hooklint-go/internal/report"
	"github.com/domenicocinque/hooklint-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
)

// errViolations marks a run that completed but found schema violations;
// the report has already been written when it is returned.
var errViolations = errors.New("manifest has violations")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errViolations) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: 2 for parse
// failures, 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, manifest.ErrInvalidFormat) {
		return report.ExitParseError
	}
	return report.ExitViolations
}

var rootCmd = &cobra.Command{
	Use:   "hooklint",
	Short: "Validate hook manifests",
	Long: `hooklint validates declarative hook manifests (the conventional
.pre-commit-config.yaml format): it checks every repo entry and its hooks
against the manifest schema and reports violations with source lines.

It can also list the hooks a manifest enables and verify that pinned
revisions still exist upstream.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.hooklint/config.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", manifest.DefaultFilename, "Manifest file to check")
	rootCmd.PersistentFlags().String("format", "text", "Output format (text or json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Remote check flags
	rootCmd.PersistentFlags().IntP("jobs", "j", config.DefaultJobs, "Number of concurrent remote lookups")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Remote check timeout")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the ref cache")
	rootCmd.PersistentFlags().Duration("cache-ttl", config.DefaultCacheTTL, "Ref cache TTL")

	// Bind flags to viper
	_ = viper.BindPFlag("manifest.file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("remote.jobs", rootCmd.PersistentFlags().Lookup("jobs"))
	_ = viper.BindPFlag("remote.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("cache.ttl", rootCmd.PersistentFlags().Lookup("cache-ttl"))

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkRemoteCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func newOrchestrator(cmd *cobra.Command, progress bool) (*app.Orchestrator, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")

	orch, err := app.New(app.Options{
		Config:   cfg,
		Verbose:  verbose,
		NoCache:  noCache,
		Progress: progress,
	})
	if err != nil {
		return nil, nil, err
	}
	return orch, cfg, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	orch, cfg, err := newOrchestrator(cmd, false)
	if err != nil {
		return err
	}

	result, err := orch.Validate(cfg.Manifest.File)
	if err != nil {
		return err
	}
	if !result.Valid() {
		return errViolations
	}
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the repos and hooks a manifest enables",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, cfg, err := newOrchestrator(cmd, false)
		if err != nil {
			return err
		}
		return orch.List(cfg.Manifest.File)
	},
}

var checkRemoteCmd = &cobra.Command{
	Use:   "check-remote",
	Short: "Verify that pinned revisions exist upstream",
	Long: `Lists the refs of every remote repo in the manifest and checks that
the pinned rev resolves to a tag, branch, or commit. Ref listings are
cached; stale pins are reported alongside the newest upstream tag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, cfg, err := newOrchestrator(cmd, true)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		_, ok, err := orch.CheckRemote(ctx, cfg.Manifest.File)
		if err != nil {
			return err
		}
		if !ok {
			return errViolations
		}
		return nil
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment",
	Long:  "Verifies that the manifest, configuration, and cache directory are in usable shape.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking environment...")
		allPassed := true

		file, _ := cmd.Flags().GetString("file")
		fmt.Printf("  Manifest (%s): ", file)
		if _, err := os.Stat(file); err == nil {
			fmt.Println("OK")
		} else {
			fmt.Println("NOT FOUND")
			allPassed = false
		}

		fmt.Print("  Config file: ")
		if _, err := config.Load(); err != nil {
			fmt.Printf("WARN (%v)\n", err)
		} else {
			fmt.Println("OK")
		}

		fmt.Print("  Cache directory: ")
		if info, err := os.Stat(config.CacheDir()); err == nil && info.IsDir() {
			fmt.Printf("OK (%s)\n", config.CacheDir())
		} else {
			fmt.Println("WARN (will be created on first use)")
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All critical checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
			return errViolations
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

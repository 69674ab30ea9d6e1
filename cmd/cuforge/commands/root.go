// Package commands implements the CLI commands for the cuforge build
// orchestrator.
package commands

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/cuforge/internal/app"
	"go.trai.ch/cuforge/internal/build"
	"go.trai.ch/cuforge/internal/core/domain"
)

// CLI represents the command line interface for cuforge.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Doctor(ctx context.Context, w io.Writer) error
}

// New creates a new CLI instance with the given app. The root command
// itself runs the build pipeline, so `cuforge --jobs 8` works without a
// subcommand.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cuforge",
		Short:         "Configure, build and install a CUDA-accelerated native library",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = c.runBuild
	rootCmd.Flags().Bool("clean", false, "Remove the build directory before configuring")
	rootCmd.Flags().Bool("debug", false, "Build with debug info instead of Release")
	rootCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Parallel compile worker count")
	rootCmd.Flags().Bool("install", false, "Run the install step after a successful compile")
	rootCmd.Flags().String("prefix", domain.DefaultPrefix, "Installation destination root")
	rootCmd.Flags().StringSlice("arch", nil, "Target GPU architectures (overrides project file and detection)")
	rootCmd.Flags().String("build-dir", "", "Build directory (overrides project file)")
	rootCmd.Flags().BoolP("watch", "w", false, "Rebuild on source changes until interrupted")

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newDoctorCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	clean, _ := cmd.Flags().GetBool("clean")
	debug, _ := cmd.Flags().GetBool("debug")
	jobs, _ := cmd.Flags().GetInt("jobs")
	install, _ := cmd.Flags().GetBool("install")
	prefix, _ := cmd.Flags().GetString("prefix")
	archs, _ := cmd.Flags().GetStringSlice("arch")
	buildDir, _ := cmd.Flags().GetString("build-dir")
	watch, _ := cmd.Flags().GetBool("watch")

	return c.app.Build(cmd.Context(), app.BuildOptions{
		Clean:         clean,
		Debug:         debug,
		Jobs:          jobs,
		Install:       install,
		Prefix:        prefix,
		Architectures: archs,
		BuildDir:      buildDir,
		Watch:         watch,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

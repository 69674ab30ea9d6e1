package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cuforge/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildDir, _ := cmd.Flags().GetString("build-dir")
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				BuildDir: buildDir,
			})
		},
	}

	cmd.Flags().String("build-dir", "", "Build directory (overrides project file)")

	return cmd
}

package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

type rootOpts struct {
	cpuProfile    string
	memProfileDir string
}

// Execute runs the command tree with args. Profilers started by the persistent flags are
// stopped once the command returns, including when it fails.
func Execute(ctx context.Context, args []string) error {
	rootCmd, teardown := RootCommand()
	defer teardown()

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// RootCommand builds the command tree. The returned teardown flushes any profiles and must be
// called after the command has executed.
func RootCommand() (*cobra.Command, func()) {
	opts := rootOpts{}
	var teardowns []func()

	rootCmd := &cobra.Command{
		Use:           "artdisrupt",
		Short:         "Perturbs images so automated image matching struggles while people still see the same picture",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.cpuProfile != "" {
				cpuProfileFile, err := os.Create(opts.cpuProfile)
				if err != nil {
					return err
				}
				if err = StartCPUProfiler(cpuProfileFile); err != nil {
					cpuProfileFile.Close()
					return err
				}
				teardowns = append(teardowns, func() {
					StopCPUProfiler()
					cpuProfileFile.Close()
				})
			}
			if opts.memProfileDir != "" {
				StartMemoryProfiler(opts.memProfileDir)
				teardowns = append(teardowns, StopMemoryProfiler)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ProtectCommand(), PresetsCommand(), ServeAppCommand())

	teardown := func() {
		for i := len(teardowns) - 1; i >= 0; i-- {
			teardowns[i]()
		}
		teardowns = nil
	}
	return rootCmd, teardown
}

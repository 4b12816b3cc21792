package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// BuildVersion can be set at build time to override the module version:
//
//	-ldflags "-X github.com/KimNorgaard/go-downsize/internal/cli.BuildVersion=1.2.3"
var BuildVersion = "n/a"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := BuildVersion
			if version == "n/a" {
				if info, ok := debug.ReadBuildInfo(); ok {
					version = info.Main.Version
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

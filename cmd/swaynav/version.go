package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the swaynav version and, when reachable, the compositor version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "swaynav %s\n", version)

			ctx := cmd.Context()
			client, err := a.connect(ctx)
			if err != nil {
				a.logger.Debug("compositor not reachable", "error", err)
				return nil
			}
			defer client.Close()

			v, err := client.GetVersion(ctx)
			if err != nil {
				a.logger.Debug("failed to query compositor version", "error", err)
				return nil
			}
			fmt.Fprintf(a.stdout, "compositor %s\n", v.HumanReadable)
			return nil
		},
	}
}

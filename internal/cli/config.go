package cli

import (
	"github.com/spf13/cobra"

	"canvashost/internal/config"
)

func configCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective deployment as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.load()
			if err != nil {
				return err
			}
			b, err := config.Marshal(d)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

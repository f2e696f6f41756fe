package sitebuild

import (
	"github.com/rkprasad/portfolio/internal/platform/manifest"
	"github.com/rkprasad/portfolio/internal/services/web"
	"github.com/spf13/cobra"
)

func manifestCmd(opts *Options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Emit the web app manifest for the build mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := opts.mode()
			if err != nil {
				return err
			}
			body, err := manifest.Build(mode, web.BasePath(mode, opts.BasePath)).JSON()
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, body)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	return cmd
}

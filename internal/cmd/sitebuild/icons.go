package sitebuild

import (
	"github.com/rkprasad/portfolio/internal/platform/icons"
	"github.com/spf13/cobra"
)

func iconsCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Print the icon identifiers site content may reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd.OutOrStdout(), out, []byte(icons.CatalogMarkdown()))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	return cmd
}

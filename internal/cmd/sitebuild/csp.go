package sitebuild

import (
	"fmt"
	"os"

	"github.com/rkprasad/portfolio/internal/platform/csp"
	"github.com/spf13/cobra"
)

func cspCmd(opts *Options) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "csp",
		Short: "Inject the content security policy meta tag into an HTML document",
		Long: "Inject the mode's content security policy meta tag into the document given by --in.\n" +
			"Without --in the policy is printed in header syntax.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := opts.mode()
			if err != nil {
				return err
			}
			if in == "" {
				return writeOutput(cmd.OutOrStdout(), out, []byte(csp.ForMode(mode).String()+"\n"))
			}
			document, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}
			injected, err := csp.InjectMeta(document, mode)
			if err != nil {
				return fmt.Errorf("inject csp into %s: %w", in, err)
			}
			if out == "" {
				out = in
			}
			return writeOutput(cmd.OutOrStdout(), out, injected)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "HTML document to rewrite")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (rewrites --in when empty, \"-\" for stdout)")
	return cmd
}

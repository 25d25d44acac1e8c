package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/udtree/pkg/conllu"
)

// newTextCmd creates the text command.
// It reconstructs sentence text from token forms and SpaceAfter=No marks,
// one line per sentence. With --check, the reconstruction is compared against
// the "# text" metadata instead of printed.
func newTextCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "text <file.conllu>",
		Short: "Reconstruct sentence text from token forms",
		Long: `Reconstruct the surface text of every sentence in a CoNLL-U file.

Tokens are joined with spaces unless MISC carries SpaceAfter=No. With --check
the reconstruction is compared against each sentence's "# text" comment and
mismatches are reported instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			roots, err := conllu.ReadFile(args[0])
			if err != nil {
				return err
			}

			if !check {
				for _, root := range roots {
					fmt.Println(strings.TrimRight(root.Node().ComputeSentence(), " "))
				}
				return nil
			}

			mismatches := 0
			for _, root := range roots {
				if root.Text == "" {
					continue
				}
				got := strings.TrimRight(root.Node().ComputeSentence(), " ")
				if got != root.Text {
					mismatches++
					logger.Warnf("Text mismatch in %s", root.Address())
					logger.Debugf("  stored:        %q", root.Text)
					logger.Debugf("  reconstructed: %q", got)
				}
			}
			if mismatches > 0 {
				return fmt.Errorf("%d sentences with text mismatches", mismatches)
			}
			logger.Infof("All %d sentences match their text metadata", len(roots))
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "compare reconstruction against # text metadata")

	return cmd
}

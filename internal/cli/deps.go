package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/udtree/pkg/conllu"
	"github.com/matzehuels/udtree/pkg/core/tree"
)

// newDepsCmd creates the deps command.
// It lists the enhanced dependencies of every node that carries them, with
// heads resolved through the sentence registry. With --raw the stored DEPS
// column is printed without resolution.
func newDepsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "deps <file.conllu>",
		Short: "List enhanced dependencies",
		Long: `List the enhanced dependency graph (the DEPS column) of a CoNLL-U file.

Each line shows the node address, its form, and its secondary relations with
heads resolved to their surface forms. Nodes without enhanced dependencies
are skipped. Malformed DEPS entries are reported as errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			roots, err := conllu.ReadFile(args[0])
			if err != nil {
				return err
			}

			for _, root := range roots {
				for _, n := range root.Nodes() {
					if raw {
						if s := n.RawDeps(); s != tree.RawDepsEmpty {
							fmt.Printf("%s\t%s\t%s\n", n.Address(), n.Form, s)
						}
						continue
					}
					deps, err := n.Deps()
					if err != nil {
						return fmt.Errorf("%s: %w", n.Address(), err)
					}
					if len(deps) == 0 {
						continue
					}
					fmt.Printf("%s\t%s", n.Address(), n.Form)
					for _, d := range deps {
						head := "ROOT"
						if !d.Parent.IsRoot() {
							head = d.Parent.Form
						}
						fmt.Printf("\t%s<-%s", d.Deprel, head)
					}
					fmt.Println()
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored DEPS column without resolving heads")

	return cmd
}

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ynabfmt/ynabfmt/internal/bank"
)

func newBanksCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List supported banks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBanks(cmd.OutOrStdout(), a.registry)
		},
	}
}

func printBanks(out io.Writer, reg *bank.Registry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTYLE\tINPUT")
	for _, p := range reg.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Style, pathways(p))
	}
	return tw.Flush()
}

func pathways(p bank.Profile) string {
	var kinds []string
	if p.SupportsText() {
		kinds = append(kinds, "csv")
	}
	if p.SupportsSheet() {
		kinds = append(kinds, "xls/xlsx")
	}
	return strings.Join(kinds, ", ")
}

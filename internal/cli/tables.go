package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the record tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type tableInfo struct {
				Name   string `json:"name"`
				Fields int    `json:"fields"`
			}
			var infos []tableInfo
			for _, rt := range types.RecordTypes() {
				infos = append(infos, tableInfo{Name: rt.Name(), Fields: len(rt.Columns())})
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), infos)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tFIELDS")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%d\n", info.Name, info.Fields)
			}
			return tw.Flush()
		},
	}
}

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <table>",
		Short: "List the fields of a table in schema order",
		Example: `  chemicals fields chemicals
  chemicals fields pictograms --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := types.LookupRecordType(args[0])
			if err != nil {
				return userError(fmt.Errorf("unknown table %q (valid: %s)", args[0], tableList()))
			}

			type fieldInfo struct {
				Label string `json:"label"`
				Kind  string `json:"kind"`
			}
			var infos []fieldInfo
			for _, c := range rt.Columns() {
				infos = append(infos, fieldInfo{Label: c.Label, Kind: c.Kind.String()})
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), infos)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tLABEL\tKIND")
			for i, info := range infos {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i, info.Label, info.Kind)
			}
			return tw.Flush()
		},
	}
}

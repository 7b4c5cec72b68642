package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/chemicals/pkg/types"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <table> <id>",
		Short: "Show a record by row ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id := args[0], args[1]
			return a.withTable(name, func(rt types.RecordType, tbl types.Table) error {
				rec, err := tbl.Get(id)
				if errors.Is(err, types.ErrNotFound) {
					return userError(fmt.Errorf("record %q not found in %s", id, name))
				}
				if err != nil {
					return storageError(err)
				}
				return printRecord(cmd.OutOrStdout(), rt, id, rec, a.flags.jsonMode)
			})
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <table> [id] <json>",
		Short: "Create or update a record",
		Long: `Set writes a record given as a JSON object keyed by field label.

Without an id, a new record is created from the given fields; omitted Text
fields are empty and omitted Flag fields are false. With the id of an
existing record, only the given fields change.`,
		Example: `  chemicals set chemicals '{"Chemical Name":"Acetone","Petroleum Base":true}'
  chemicals set chemical_inventory 0190c3e2-... '{"Active":false,"Disposal Method":"Landfill"}'`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id, payload := args[0], "", args[len(args)-1]
			if len(args) == 3 {
				id = args[1]
			}
			return a.withTable(name, func(rt types.RecordType, tbl types.Table) error {
				base := defaultValues(rt)
				if id != "" {
					existing, err := tbl.Get(id)
					switch {
					case err == nil:
						if base, err = rt.Encode(existing); err != nil {
							return sysError(err)
						}
					case !errors.Is(err, types.ErrNotFound):
						return storageError(err)
					}
				}

				values, err := applyJSON(rt, base, []byte(payload))
				if err != nil {
					return userError(err)
				}
				rec, err := rt.Decode(values)
				if err != nil {
					return userError(err)
				}

				savedID, err := tbl.Set(id, rec)
				if err != nil {
					return storageError(err)
				}
				return printRecord(cmd.OutOrStdout(), rt, savedID, rec, a.flags.jsonMode)
			})
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var filters []string
	cmd := &cobra.Command{
		Use:   "list <table>",
		Short: "List records, optionally filtered by field value",
		Long: `List prints every record of a table ordered by row ID.

Each --filter takes Label=value; multiple filters are ANDed. Values for Flag
fields are parsed as booleans (true, false, 1, 0, t, f).`,
		Example: `  chemicals list chemicals
  chemicals list chemicals --filter "Signal Word=Danger"
  chemicals list chemical_inventory --filter Active=true --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTable(args[0], func(rt types.RecordType, tbl types.Table) error {
				filter, err := parseFilters(rt, filters)
				if err != nil {
					return userError(err)
				}
				rows, err := tbl.Fetch(filter)
				if err != nil {
					return storageError(err)
				}
				a.logger.Debugw("listed records", "table", rt.Name(), "rows", len(rows))
				return printRows(cmd.OutOrStdout(), rt, rows, a.flags.jsonMode)
			})
		},
	}
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Label=value filter (repeatable)")
	return cmd
}

// parseFilters turns Label=value expressions into a Fetch filter, typing
// each value by the kind of the field it names.
func parseFilters(rt types.RecordType, exprs []string) (map[string]any, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	cols := rt.Columns()
	filter := make(map[string]any, len(exprs))
	for _, expr := range exprs {
		label, raw, ok := strings.Cut(expr, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not Label=value", types.ErrInvalidFilter, expr)
		}
		pos, err := rt.Lookup(label)
		if err != nil {
			return nil, err
		}
		if cols[pos].Kind == types.KindFlag {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s expects a boolean, got %q", types.ErrInvalidFilter, label, raw)
			}
			filter[label] = types.Flag(b)
			continue
		}
		filter[label] = types.Text(raw)
	}
	return filter, nil
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <table> <id>",
		Short: "Delete a record by row ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, id := args[0], args[1]
			return a.withTable(name, func(rt types.RecordType, tbl types.Table) error {
				err := tbl.Delete(id)
				if errors.Is(err, types.ErrNotFound) {
					return userError(fmt.Errorf("record %q not found in %s", id, name))
				}
				if err != nil {
					return storageError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s from %s\n", id, name)
				return nil
			})
		},
	}
}

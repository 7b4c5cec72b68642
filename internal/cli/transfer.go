package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/chemicals/internal/sheet"
	"github.com/mesh-intelligence/chemicals/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <table>",
		Short: "Write a table as CSV with a label header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withTable(args[0], func(rt types.RecordType, tbl types.Table) error {
				rows, err := tbl.Fetch(nil)
				if err != nil {
					return storageError(err)
				}
				records := make([]any, len(rows))
				for i, row := range rows {
					records[i] = row.Record
				}

				if out == "" || out == "-" {
					if err := sheet.Write(cmd.OutOrStdout(), rt, records); err != nil {
						return sysError(fmt.Errorf("export %s: %w", rt.Name(), err))
					}
				} else if err := exportFile(out, rt, records); err != nil {
					return err
				}
				a.logger.Infow("exported table", "table", rt.Name(), "rows", len(records), "out", out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// exportFile writes records to path as CSV. A failure to flush the file on
// close is reported like any other write error.
func exportFile(path string, rt types.RecordType, records []any) error {
	f, err := os.Create(path)
	if err != nil {
		return userError(err)
	}
	if err := sheet.Write(f, rt, records); err != nil {
		f.Close()
		return sysError(fmt.Errorf("export %s: %w", rt.Name(), err))
	}
	if err := f.Close(); err != nil {
		return sysError(fmt.Errorf("export %s: closing %s: %w", rt.Name(), path, err))
	}
	return nil
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <table> <file>",
		Short: "Add the records of a CSV file to a table",
		Long: `Import reads a CSV file whose header names the table's fields, in any
order, and adds each row as a new record. Use "-" to read standard input.
The file is imported as a whole: if any row is invalid or cannot be
stored, no record is added.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			return a.withTable(name, func(rt types.RecordType, tbl types.Table) error {
				var r io.Reader = cmd.InOrStdin()
				if path != "-" {
					f, err := os.Open(path)
					if err != nil {
						return userError(err)
					}
					defer f.Close()
					r = f
				}

				records, err := sheet.Read(r, rt)
				if err != nil {
					return userError(fmt.Errorf("import %s: %w", path, err))
				}
				if _, err := tbl.SetAll(records); err != nil {
					return storageError(err)
				}
				a.logger.Infow("imported records", "table", rt.Name(), "rows", len(records), "file", path)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into %s\n", len(records), name)
				return nil
			})
		},
	}
}

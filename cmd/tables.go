package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tesselslate/xwin/internal/keyboard"
	"github.com/tesselslate/xwin/key"
	"github.com/tesselslate/xwin/window"
)

var tableNames = []string{"codes", "syms", "atoms", "keycodes"}

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables [codes|syms|atoms|keycodes]",
	Short: "Print the key, symbol and atom tables",
	Long: `Print the ordered tables used to describe events.

  codes     physical key codes and their names
  syms      key symbols and their names
  atoms     X atoms interned on startup
  keycodes  X keycodes and the physical keys they map to

With no argument, every table is printed.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: tableNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := tableNames
		if len(args) > 0 {
			names = args
		}
		for i, name := range names {
			if len(names) > 1 {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", name)
			}
			if err := printTable(cmd.OutOrStdout(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

// printTable writes the named table to out, one entry per line.
func printTable(out io.Writer, name string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	switch name {
	case "codes":
		for _, c := range key.Codes() {
			fmt.Fprintf(w, "0x%02x\t%s\n", uint8(c.Code), c.Name)
		}
	case "syms":
		for _, s := range key.Syms() {
			fmt.Fprintf(w, "0x%08x\t%s\n", uint32(s.Sym), s.Name)
		}
	case "atoms":
		for _, a := range window.Atoms() {
			fmt.Fprintf(w, "%d\t%s\n", int(a), a)
		}
	case "keycodes":
		for raw := uint32(8); raw < 256; raw++ {
			if code := keyboard.LookupCode(raw); code != key.CodeUnknown {
				fmt.Fprintf(w, "%d\t%s\n", raw, code)
			}
		}
	default:
		return fmt.Errorf("unknown table %q", name)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hpackdump/internal/shared/compression/hpack"
	"hpackdump/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <vector-file>",
	Short: "Replay a JSON or msgpack vector file against a decoder and print per-step table state",
	Long: `Inspect loads a Vector file (JSON or msgpack, auto-detected), decodes each
step's wire_hex in order against one long-lived Decoder - exactly like a
real connection would - and prints the resulting headers and dynamic table
size after every step. Useful for watching RFC 7541 Appendix C-style
examples evolve.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer recoverer.Recover("inspect")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read vector file: %w", err)
		}

		vf, err := hpack.LoadVectors(data)
		if err != nil {
			return fmt.Errorf("load vectors: %w", err)
		}

		dec := hpack.NewDecoder(hpack.DefaultConfig(), logger)

		for i, v := range vf.Vectors {
			wire, err := hex.DecodeString(v.WireHex)
			if err != nil {
				return fmt.Errorf("vector %d: decode wire_hex: %w", i, err)
			}

			if v.TableSize > 0 {
				dec.SetPeerMaxTableSize(v.TableSize)
			}

			fields, err := dec.Decode(wire)
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.Error("vector %d (%s): %v", i, v.Description, err))
				return err
			}

			table := ui.NewTable([]string{"NAME", "VALUE"}).
				WithTitle(fmt.Sprintf("step %d: %s", i, v.Description))
			for _, f := range fields {
				table.AddRow([]string{f.Name, f.Value})
			}
			table.Print()

			dt := ui.NewTable([]string{"IDX", "NAME", "VALUE"}).WithTitle("dynamic table")
			for idx, e := range dec.TableEntries() {
				dt.AddRow([]string{fmt.Sprintf("%d", idx+1), e.Name, e.Value})
			}
			dt.Print()

			fmt.Println(ui.OK("table size: %d bytes", dec.TableSize()))
		}

		return nil
	},
}

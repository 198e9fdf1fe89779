package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hpackdump/internal/shared/compression/hpack"
	"hpackdump/internal/ui"
)

var decodeTableSize uint32

var decodeCmd = &cobra.Command{
	Use:   "decode [hex-file]",
	Short: "Decode a hex-encoded HPACK header block and print the resulting headers",
	Long: `Decode reads a single HPACK header block as hex text (from a file, or
stdin if no file is given), decodes it against a fresh dynamic table, and
prints the resulting header list. Whitespace and newlines in the input are
ignored, so a file of "xxd -p"-style hex lines works directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer recoverer.Recover("decode")

		raw, err := readHexInput(args)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		cfg := hpack.DefaultConfig()
		if decodeTableSize > 0 {
			cfg.InitialTableSize = decodeTableSize
			cfg.PeerMaxTableSize = decodeTableSize
		}
		dec := hpack.NewDecoder(cfg, logger)

		fields, err := dec.Decode(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.Error("decode failed: %v", err))
			return err
		}

		table := ui.NewTable([]string{"NAME", "VALUE"}).WithTitle(fmt.Sprintf("%d header(s)", len(fields)))
		for _, f := range fields {
			table.AddRow([]string{f.Name, f.Value})
		}
		table.Print()

		fmt.Println(ui.OK("decoded %d bytes, %d header(s), dynamic table now %d bytes",
			len(raw), len(fields), dec.TableSize()))
		return nil
	},
}

func init() {
	decodeCmd.Flags().Uint32Var(&decodeTableSize, "table-size", 0, "initial dynamic table size in bytes (0 = RFC 7541 default)")
}

func readHexInput(args []string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			return r
		default:
			return -1
		}
	}, string(text))

	return hex.DecodeString(cleaned)
}

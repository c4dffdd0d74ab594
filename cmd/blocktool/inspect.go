package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bytes/memblock"
)

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	var b *memblock.Block
	if rawInput {
		b = memblock.FromBytes(data)
	} else {
		b, err = decodeText(string(data))
		if err != nil {
			return err
		}
	}

	fmt.Printf("size:    %d bytes\n", b.Len())
	fmt.Printf("encoded: %s\n", b.ToBase64Text())
	if b.Len() == 0 {
		return nil
	}
	fmt.Println(renderHexDump(b.Bytes()))
	return nil
}

// renderHexDump formats data as a 16-bytes-per-row offset/hex/ASCII table.
func renderHexDump(data []byte) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf)
	table.Header([]string{"Offset", "Hex", "ASCII"})

	var rows [][]string
	for offset := 0; offset < len(data); offset += 16 {
		end := offset + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[offset:end]
		rows = append(rows, []string{
			fmt.Sprintf("%08x", offset),
			fmt.Sprintf("% x", row),
			asciiColumn(row),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func asciiColumn(row []byte) string {
	out := make([]byte, len(row))
	for i, c := range row {
		if c >= 0x20 && c < 0x7f {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

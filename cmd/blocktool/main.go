// Command blocktool encodes, decodes and inspects the text forms of a
// memory block.
//
// Usage:
//
//	blocktool encode [flags] [input-file]
//	blocktool decode [flags] [input-file]
//	blocktool inspect [flags] [input-file]
//
// Without an input file, data is read from stdin.
//
// Examples:
//
//	blocktool encode payload.bin
//	blocktool encode -x payload.bin
//	echo -n "3.AHv." | blocktool decode -o payload.bin
//	blocktool inspect state.txt
//	blocktool inspect -r payload.bin
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bytes/memblock"
)

var (
	useHex     bool
	rawInput   bool
	outputFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "blocktool",
		Short:         "encode, decode and inspect memory block text forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	encodeCmd := &cobra.Command{
		Use:   "encode [input-file]",
		Short: "encode raw bytes as length-prefixed text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEncode,
	}
	encodeCmd.Flags().BoolVarP(&useHex, "hex", "x", false, "emit hex text instead of the length-prefixed form")

	decodeCmd := &cobra.Command{
		Use:   "decode [input-file]",
		Short: "decode encoded text back to raw bytes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDecode,
	}
	decodeCmd.Flags().BoolVarP(&useHex, "hex", "x", false, "treat the input as hex text")
	decodeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write raw bytes to OUTPUT_FILE (default: stdout)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input-file]",
		Short: "show a summary and hex dump of a block",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVarP(&useHex, "hex", "x", false, "treat the input as hex text")
	inspectCmd.Flags().BoolVarP(&rawInput, "raw", "r", false, "treat the input as raw bytes, not encoded text")

	rootCmd.AddCommand(encodeCmd, decodeCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readInput returns the contents of the file named in args, or of stdin
// when no argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		logrus.Debugf("read %d bytes from %s", len(data), args[0])
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("read %d bytes from stdin", len(data))
	return data, nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	b := memblock.FromBytes(data)
	if useHex {
		fmt.Println(b.ToHex())
		return nil
	}
	fmt.Println(b.ToBase64Text())
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	b, err := decodeText(string(data))
	if err != nil {
		return err
	}
	logrus.Debugf("decoded %d bytes", b.Len())

	if outputFile != "" {
		return os.WriteFile(outputFile, b.Bytes(), 0644)
	}
	_, err = os.Stdout.Write(b.Bytes())
	return err
}

// decodeText decodes trimmed input text according to the selected format.
func decodeText(text string) (*memblock.Block, error) {
	text = strings.TrimSpace(text)
	b := memblock.New(0)
	if useHex {
		b.LoadFromHex(text)
		return b, nil
	}
	if err := b.LoadFromBase64Text(text); err != nil {
		return nil, err
	}
	return b, nil
}

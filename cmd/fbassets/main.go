// Command fbassets decodes/encodes dbx files and unpacks/packs fbrb
// archives from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "fbassets",
		Short:         "decode/encode dbx files and pack/unpack fbrb archives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newPackCmd())
	root.AddCommand(newUnpackCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fbassets:", err)
		os.Exit(1)
	}
}

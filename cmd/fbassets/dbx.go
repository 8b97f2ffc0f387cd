package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/frankelstner/fbassets/dbx"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <path>",
		Short: "render dbx binary files as XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return walkAndConvert(args[0], ".dbx", func(data []byte) ([]byte, error) {
				return dbx.Decode(data)
			}, ".xml")
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <path>",
		Short: "compile dbx XML renderings back to binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return walkAndConvert(args[0], ".xml", func(data []byte) ([]byte, error) {
				return dbx.Encode(data)
			}, ".dbx")
		},
	}
}

// walkAndConvert applies convert to a single file, or to every file with
// srcExt under a directory, writing each result alongside the source with
// dstExt substituted for srcExt. Conversions that return (nil, nil) are
// skipped with a warning rather than failing the run.
func walkAndConvert(root string, srcExt string, convert func([]byte) ([]byte, error), dstExt string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}

	if !info.IsDir() {
		return convertFile(root, convert, dstExt)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), srcExt) {
			return nil
		}
		if convErr := convertFile(path, convert, dstExt); convErr != nil {
			fmt.Fprintln(os.Stderr, "fbassets:", convErr)
		}
		return nil
	})
}

func convertFile(path string, convert func([]byte) ([]byte, error), dstExt string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	out, err := convert(data)
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}
	if out == nil {
		fmt.Fprintf(os.Stderr, "fbassets: skipping %s (unrecognized format)\n", path)
		return nil
	}

	dstPath := strings.TrimSuffix(path, filepath.Ext(path)) + dstExt
	if err := os.WriteFile(dstPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dstPath, err)
	}

	fmt.Printf("%s -> %s (%s)\n", path, dstPath, humanize.Bytes(uint64(len(out))))

	return nil
}

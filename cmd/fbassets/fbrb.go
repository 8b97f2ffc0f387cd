package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/frankelstner/fbassets/fbrb"
)

// folderSuffix is the suffix the original tooling required on source
// folders before packing, and reconstructs on unpack.
const folderSuffix = " FbRB"

func newPackCmd() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "pack <folder ending in ' FbRB'> [archive.fbrb]",
		Short: "pack a folder into an fbrb archive",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]
			if !strings.HasSuffix(folder, folderSuffix) {
				if !confirm(fmt.Sprintf("%q doesn't end in %q; pack it anyway?", folder, folderSuffix)) {
					return nil
				}
			}

			target := strings.TrimSuffix(folder, folderSuffix) + ".fbrb"
			if len(args) == 2 {
				target = args[1]
			}

			files, err := collectFiles(folder)
			if err != nil {
				return err
			}

			archive, err := fbrb.Pack(files, fbrb.WithCompressionLevel(level))
			if err != nil {
				return fmt.Errorf("pack: %w", err)
			}

			if err := os.WriteFile(target, archive, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			fmt.Printf("%s -> %s (%d files, %s)\n", folder, target, len(files), humanize.Bytes(uint64(len(archive))))

			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 1, "gzip level for the payload stream (0-9, 0 disables payload compression)")

	return cmd
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <archive.fbrb> [folder]",
		Short: "unpack an fbrb archive into a folder",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			archivePath := args[0]

			target := strings.TrimSuffix(archivePath, filepath.Ext(archivePath)) + folderSuffix
			if len(args) == 2 {
				target = args[1]
			}

			data, err := os.ReadFile(archivePath)
			if err != nil {
				return fmt.Errorf("read %s: %w", archivePath, err)
			}

			files, err := fbrb.Unpack(data)
			if err != nil {
				return fmt.Errorf("unpack %s: %w", archivePath, err)
			}
			if files == nil {
				return fmt.Errorf("%s is not an fbrb archive", archivePath)
			}

			var total uint64
			for _, f := range files {
				dst := filepath.Join(target, filepath.FromSlash(f.Path))
				if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
					return fmt.Errorf("mkdir %s: %w", filepath.Dir(dst), err)
				}
				if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", dst, err)
				}
				total += uint64(len(f.Data))
			}

			fmt.Printf("%s -> %s (%d files, %s)\n", archivePath, target, len(files), humanize.Bytes(total))

			return nil
		},
	}
}

// collectFiles walks folder and builds the fbrb.File list in the order the
// filesystem yields it; unrecognized extensions are left for fbrb.Pack to
// skip.
func collectFiles(folder string) ([]fbrb.File, error) {
	var files []fbrb.File

	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(folder, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		files = append(files, fbrb.File{Path: filepath.ToSlash(rel), Data: data})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", folder, err)
	}

	return files, nil
}

// confirm prompts the user on stdin, matching the original tool's
// interactive folder-mode behavior when a source folder's name looks
// wrong.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)

	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))

	return line == "y" || line == "yes"
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/dumpable"
	"github.com/aretw0/dumpable/internal/logging"
	"github.com/aretw0/dumpable/internal/yamldoc"
	"github.com/spf13/cobra"
)

// cmdLogger is set from --log-level before any command runs.
var cmdLogger = logging.NewNop()

// root is one decoded document, named after its file and position.
type root struct {
	Name  string
	Value any
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Dump the documents of YAML or JSON files",
	Long: `Decodes every document of the given files and dumps it through the configured sink.
With --string, prints the single-line debug string of each document instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, err := loadRoots(args)
		if err != nil {
			return err
		}

		asString, _ := cmd.Flags().GetBool("string")
		if asString {
			return printStrings(cmd.OutOrStdout(), roots)
		}

		s, err := sinkFromFlags(cmd, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		d := dumpable.New(dumpable.WithSink(s), dumpable.WithLogger(cmdLogger))
		return dumpRoots(cmd.Context(), d, roots)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("string", false, "Print debug strings instead of using the sink")
}

// loadRoots decodes every document of files, in order.
func loadRoots(files []string) ([]root, error) {
	var roots []root
	for _, path := range files {
		docs, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		for i, doc := range docs {
			roots = append(roots, root{Name: fmt.Sprintf("%s:%d", filepath.Base(path), i), Value: doc})
		}
		cmdLogger.Debug("loaded file", "path", path, "documents", len(docs))
	}
	return roots, nil
}

func decodeFile(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	docs, err := yamldoc.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return docs, nil
}

func printStrings(w io.Writer, roots []root) error {
	for _, r := range roots {
		if _, err := fmt.Fprintf(w, "%s %s\n", r.Name, dumpable.ToDebugString(r.Value)); err != nil {
			return err
		}
	}
	return nil
}

func dumpRoots(ctx context.Context, d *dumpable.Dumper, roots []root) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, r := range roots {
		if err := d.DumpContext(ctx, r.Value); err != nil {
			cmdLogger.Error("dump failed", "error", err, slog.String("root", r.Name))
			return err
		}
	}
	return nil
}

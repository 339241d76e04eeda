package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/renumber/internal/fsutil"
	"github.com/agentic-research/renumber/internal/renamer"
	"github.com/agentic-research/renumber/internal/report"
)

var errNoRoot = errors.New("no folder path given")

type rootOptions struct {
	exclude []string
	json    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "renumber [folder]",
		Short: "Renumber the files in each subdirectory of a folder",
		Long: `renumber renames every file inside each immediate subdirectory of
folder to <subdirectory>_<n><ext>, counting n from 1 in name order and
keeping the original extension. Without a folder argument the path is
read from standard input.

The run stops at the first error and does not undo renames already done.
An existing file is never overwritten.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenumber(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.exclude, "exclude", "x", nil, "Glob for entry names to leave alone (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the renames as JSON on stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every rename")
	return cmd
}

func runRenumber(cmd *cobra.Command, args []string, opts rootOptions) error {
	// 1. Resolve the folder from the argument or an interactive prompt.
	var root string
	if len(args) == 1 {
		root = args[0]
	} else {
		var err error
		root, err = promptRoot(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}

	// 2. Logger on stderr, stdout stays free for the report.
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	r, err := renamer.New(fsutil.NewOS(abs), renamer.Options{Exclude: opts.exclude, DisplayRoot: abs}, log)
	if err != nil {
		return err
	}

	// 3. Rename, then report whatever happened.
	log.Info("renumbering", "root", abs)
	res, runErr := r.RenameAll("/")
	hostPaths(abs, &res)

	if opts.json {
		if err := report.Write(cmd.OutOrStdout(), abs, res, runErr); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if runErr != nil {
		if len(res.Renames) > 0 {
			log.Warn("stopped after partial progress", "renamed", len(res.Renames))
		}
		return runErr
	}
	log.Info("done", "categories", res.Categories, "files", res.Files, "renamed", len(res.Renames))
	return nil
}

// promptRoot asks for the folder on w and reads one line from r.
func promptRoot(r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter folder path: "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read folder path: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errNoRoot
	}
	return line, nil
}

// hostPaths rewrites the filesystem-relative paths in res to host paths under base.
func hostPaths(base string, res *renamer.Result) {
	for i := range res.Renames {
		res.Renames[i].From = filepath.Join(base, filepath.FromSlash(res.Renames[i].From))
		res.Renames[i].To = filepath.Join(base, filepath.FromSlash(res.Renames[i].To))
	}
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "renumber:", err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/realign/internal/logging"
	"github.com/yaklabco/realign/internal/ui/pretty"
	"github.com/yaklabco/realign/pkg/config"
	"github.com/yaklabco/realign/pkg/runner"
)

type shiftFlags struct {
	delta    int
	lines    string
	style    string
	tabWidth int
	write    bool
	backup   bool
	jobs     int
	ignore   []string
}

func newShiftCommand() *cobra.Command {
	flags := &shiftFlags{}

	cmd := &cobra.Command{
		Use:   "shift [paths...]",
		Short: "Shift indentation by a signed column delta",
		Long:  shiftLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.delta, "delta", "d", 0, "signed column shift to apply")
	cmd.Flags().StringVar(&flags.lines, "lines", "", "1-based inclusive line span to shift, as start:end")
	cmd.Flags().StringVar(&flags.style, "style", "", "indentation style: spaces, tabs")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", 0, "columns per indentation unit")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place instead of printing diffs")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "create sidecar backups before writing")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip during discovery")

	_ = cmd.MarkFlagRequired("delta")

	return cmd
}

const shiftLongDescription = `Shift the indentation of text by a signed column delta.

Markdown files are parsed so fenced code blocks, indented code blocks,
and inline code spans keep their exact bytes. Other files are shifted
line by line. Without --write, shift prints unified diffs and leaves
the files alone.

Examples:
  realign shift -d 2 README.md            # preview a two-column indent
  realign shift -d -4 --write docs/       # outdent a whole tree in place
  realign shift -d 2 --lines 10:20 a.txt  # shift only lines 10 through 20
  realign shift -d 8 --style tabs --tab-width 4 --write Makefile.md`

func runShift(cmd *cobra.Command, args []string, flags *shiftFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := resolveIndentation(cmd, configPath, flags)
	if err != nil {
		return err
	}

	startLine, endLine, err := parseLineSpan(flags.lines)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	opts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
		Delta:        flags.delta,
		StartLine:    startLine,
		EndLine:      endLine,
		Config:       cfg,
		Write:        flags.write,
		Backup:       flags.backup,
	}

	logger.Debug("starting realign run",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldDelta, opts.Delta,
		logging.FieldStyle, string(cfg.Style),
		logging.FieldUnitWidth, cfg.UnitWidth,
		logging.FieldWrite, opts.Write,
	)

	result, err := runner.New().Run(ctx, opts)
	if err != nil {
		return errors.Join(errors.New("realign run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	separator := styles.Dim.Render(strings.Repeat("─", pretty.TerminalWidth(out))) + "\n"

	printedDiff := false
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("file failed",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
			continue
		}

		fr := outcome.Result
		if fr.Skipped {
			logger.Warn("file skipped",
				logging.FieldPath, fr.Path,
				"reason", fr.SkipReason,
			)
			continue
		}

		if fr.Changed && !fr.Written {
			if printedDiff {
				fmt.Fprint(out, separator)
			}
			fmt.Fprint(out, styles.FormatDiff(fr.Diff))
			printedDiff = true
		}
	}

	fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))

	if result.HasErrors() {
		return fmt.Errorf("%d files failed", result.Stats.FilesErrored)
	}

	return nil
}

// resolveIndentation layers the indentation config: defaults, then the
// config file, then explicit flags.
func resolveIndentation(cmd *cobra.Command, configPath string, flags *shiftFlags) (config.Indentation, error) {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Indentation{}, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("style") {
		cfg.Style = config.Style(flags.style)
	}
	if cmd.Flags().Changed("tab-width") {
		cfg.UnitWidth = flags.tabWidth
	}

	if err := cfg.Validate(); err != nil {
		return config.Indentation{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return cfg, nil
}

// parseLineSpan parses the --lines value. Accepted forms: "", "n",
// "a:b", "a:", and ":b". Zero return values mean "unbounded".
func parseLineSpan(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}

	startStr, endStr, found := strings.Cut(s, ":")
	if !found {
		endStr = startStr
	}

	parse := func(v string) (int, error) {
		if v == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid line number %q", v)
		}
		if n < 1 {
			return 0, fmt.Errorf("line numbers are 1-based, got %d", n)
		}
		return n, nil
	}

	start, err := parse(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := parse(endStr)
	if err != nil {
		return 0, 0, err
	}

	if start > 0 && end > 0 && end < start {
		return 0, 0, fmt.Errorf("line span %q ends before it starts", s)
	}

	return start, end, nil
}

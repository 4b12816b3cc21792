package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	downsize "github.com/KimNorgaard/go-downsize"
	"github.com/KimNorgaard/go-downsize/internal/cli/log"
	"github.com/KimNorgaard/go-downsize/savings"
)

const (
	flagLevel = "level"
	flagJSON  = "json"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Compare gzip sizes of a document before and after optimizing",
		Long: `Optimizes a document and gzips both the original and the optimized text,
reporting raw sizes, compressed sizes and the improvement in percent.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStats,
	}
	addInputFlags(cmd)
	cmd.Flags().Int(flagLevel, -1, "gzip compression level, -1 for the default")
	cmd.Flags().Bool(flagJSON, false, "print the report as JSON")
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	logger := log.FromContext(cmd.Context())

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	level, err := cmd.Flags().GetInt(flagLevel)
	if err != nil {
		return err
	}

	// Compare against the compact form of the input so that white space in
	// the source does not count as an improvement.
	v, err := downsize.Parse(data, opts...)
	if err != nil {
		return err
	}
	original, err := downsize.Marshal(v, opts...)
	if err != nil {
		return err
	}
	optimized, err := downsize.OptimizeJSON(v, opts...)
	if err != nil {
		return err
	}

	report, err := savings.Measure(original, optimized, savings.Level(level))
	if err != nil {
		return err
	}
	logger.Debug("measured savings", "originalGzip", report.OriginalGzip, "optimizedGzip", report.OptimizedGzip)

	if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
		out, err := json.Marshal(struct {
			savings.Report `json:",inline"`
			Improvement    float64 `json:"improvement"`
		}{report, report.Improvement()})
		if err != nil {
			return err
		}
		return writeLine(cmd.OutOrStdout(), out)
	}
	return printReport(cmd.OutOrStdout(), report)
}

func writeLine(w io.Writer, data []byte) error {
	_, err := w.Write(append(data, '\n'))
	return err
}

func printReport(w io.Writer, r savings.Report) error {
	highlight := color.New(color.FgGreen, color.Bold)
	if r.Improvement() <= 0 {
		highlight = color.New(color.FgYellow)
	}
	if isTerminal(w) {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}

	if _, err := fmt.Fprintf(w, "original:  %d bytes, %d bytes gzipped\n", r.OriginalSize, r.OriginalGzip); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "optimized: %d bytes, %d bytes gzipped\n", r.OptimizedSize, r.OptimizedGzip); err != nil {
		return err
	}
	_, err := highlight.Fprintf(w, "improvement: %.2f%%\n", r.Improvement())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

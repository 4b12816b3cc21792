package cli

import (
	"github.com/spf13/cobra"

	downsize "github.com/KimNorgaard/go-downsize"
	"github.com/KimNorgaard/go-downsize/internal/cli/log"
)

func newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize [file]",
		Short: "Write the optimized JSON text of a document",
		Long: `Reads a JSON (or YAML) document from file or stdin, regroups the fields
of every object by value type and writes the resulting JSON text.`,
		Example: `downsize optimize data.json -o data.min.json
cat config.yaml | downsize optimize --input-format yaml --indent 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runOptimize,
	}
	addInputFlags(cmd)
	cmd.Flags().Int(flagIndent, 0, "indent nested levels by this many spaces, 0 for compact output")
	cmd.Flags().StringP(flagOutput, "o", "", "write to this file instead of stdout")
	return cmd
}

func runOptimize(cmd *cobra.Command, args []string) error {
	logger := log.FromContext(cmd.Context())

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	indent, err := cmd.Flags().GetInt(flagIndent)
	if err != nil {
		return err
	}
	opts = append(opts, downsize.Indent(indent))

	out, err := downsize.OptimizeJSON(data, opts...)
	if err != nil {
		return err
	}
	logger.Debug("optimized document", "inputBytes", len(data), "outputBytes", len(out))
	return writeOutput(cmd, out)
}

func optionsFromFlags(cmd *cobra.Command) ([]downsize.Option, error) {
	maxDepth, err := cmd.Flags().GetInt(flagMaxDepth)
	if err != nil {
		return nil, err
	}
	return []downsize.Option{downsize.MaxDepth(maxDepth)}, nil
}

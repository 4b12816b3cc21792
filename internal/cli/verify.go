package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	downsize "github.com/KimNorgaard/go-downsize"
	"github.com/KimNorgaard/go-downsize/internal/cli/log"
	"github.com/KimNorgaard/go-downsize/value"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check that optimizing a document keeps its content",
		Long: `Optimizes a document and checks the result against the original, both as
parsed values with exact number literals and as RFC 8785 canonical JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVerify,
	}
	addInputFlags(cmd)
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := log.FromContext(cmd.Context())

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	optimized, err := downsize.OptimizeJSON(data, opts...)
	if err != nil {
		return err
	}

	before, err := downsize.Parse(data, opts...)
	if err != nil {
		return err
	}
	after, err := downsize.Parse(optimized, opts...)
	if err != nil {
		return err
	}
	if !value.Equal(before, after) {
		return fmt.Errorf("optimized document differs from the original")
	}

	// Canonical JSON is defined for objects and arrays only.
	if value.IsContainer(before) {
		same, err := downsize.SameContent(data, optimized)
		if err != nil {
			return err
		}
		if !same {
			return fmt.Errorf("canonical form of optimized document differs from the original")
		}
	}

	logger.Info("document verified", "bytes", len(data))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return err
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const (
	flagInputFormat = "input-format"
	flagMaxDepth    = "max-depth"
	flagIndent      = "indent"
	flagOutput      = "output"

	inputFormatJSON = "json"
	inputFormatYAML = "yaml"
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagInputFormat, inputFormatJSON, fmt.Sprintf("format of the input document, %q or %q", inputFormatJSON, inputFormatYAML))
	cmd.Flags().Int(flagMaxDepth, 1000, "maximum nesting depth of the input document")
}

// readInput returns the JSON text named by args, reading stdin when args is
// empty or "-". YAML input is converted to JSON first.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	format, err := cmd.Flags().GetString(flagInputFormat)
	if err != nil {
		return nil, err
	}
	switch format {
	case inputFormatJSON:
		return data, nil
	case inputFormatYAML:
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("converting YAML input: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// writeOutput writes data followed by a newline to the file named by the
// output flag, or to the command's stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	path, err := cmd.Flags().GetString(flagOutput)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" || path == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	downsize "github.com/KimNorgaard/go-downsize"
	"github.com/KimNorgaard/go-downsize/internal/cli/log"
)

const (
	flagMap       = "map"
	flagPin       = "pin"
	flagUseNumber = "use-number"
)

func newRebuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebuild [file]",
		Short: "Rebuild an optimized document into record or map shape",
		Long: `Parses optimized JSON text and converts it into Go values, records in
insertion order by default or as unordered maps with --map, then prints the
result as JSON. Map-shaped records are printed with sorted keys.

Individual fields can be pinned to a shape with --pin parent/child=shape,
where parent is the key of the record holding the field ("" for the root
record) and shape is "map" or "record".`,
		Example: `downsize rebuild data.min.json --map --pin nested/object=record`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRebuild,
	}
	addInputFlags(cmd)
	cmd.Flags().Bool(flagMap, false, "rebuild records as maps instead of ordered records")
	cmd.Flags().StringArray(flagPin, nil, "pin the shape of a field, as parent/child=map|record")
	cmd.Flags().Bool(flagUseNumber, false, "keep numbers as exact literals")
	cmd.Flags().Int(flagIndent, 2, "indent nested levels by this many spaces, 0 for compact output")
	cmd.Flags().StringP(flagOutput, "o", "", "write to this file instead of stdout")
	return cmd
}

func runRebuild(cmd *cobra.Command, args []string) error {
	logger := log.FromContext(cmd.Context())

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	pins, err := cmd.Flags().GetStringArray(flagPin)
	if err != nil {
		return err
	}
	for _, p := range pins {
		pin, err := parsePin(p)
		if err != nil {
			return err
		}
		opts = append(opts, pin)
	}
	if useNumber, _ := cmd.Flags().GetBool(flagUseNumber); useNumber {
		opts = append(opts, downsize.UseNumber())
	}

	shape := downsize.RecordShape
	if asMap, _ := cmd.Flags().GetBool(flagMap); asMap {
		shape = downsize.MapShape
	}
	logger.Debug("rebuilding document", "shape", shape, "pins", len(pins))

	v, err := downsize.Rebuild(data, shape, opts...)
	if err != nil {
		return err
	}

	indent, err := cmd.Flags().GetInt(flagIndent)
	if err != nil {
		return err
	}
	marshalOpts := []json.Options{json.Deterministic(true)}
	if indent > 0 {
		marshalOpts = append(marshalOpts, jsontext.WithIndent(strings.Repeat(" ", indent)))
	}
	out, err := json.Marshal(v, marshalOpts...)
	if err != nil {
		return fmt.Errorf("printing rebuilt document: %w", err)
	}
	return writeOutput(cmd, out)
}

// parsePin parses a parent/child=shape flag value.
func parsePin(s string) (downsize.Option, error) {
	path, shapeName, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("invalid pin %q: missing =shape", s)
	}
	parent, child, ok := strings.Cut(path, "/")
	if !ok {
		return nil, fmt.Errorf("invalid pin %q: expected parent/child", s)
	}

	var shape downsize.Shape
	switch shapeName {
	case "map":
		shape = downsize.MapShape
	case "record":
		shape = downsize.RecordShape
	default:
		return nil, fmt.Errorf("invalid pin %q: unknown shape %q", s, shapeName)
	}
	return downsize.PinShape(parent, child, shape), nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"artdisrupt/pkg/disruptor"
)

func PresetsCommand() *cobra.Command {
	var asJSON bool

	command := &cobra.Command{
		Use:     "presets",
		Short:   "List the available protection presets",
		Example: "artdisrupt presets --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePresets(cmd.OutOrStdout(), asJSON)
		},
	}

	command.Flags().BoolVar(&asJSON, "json", false, "Print presets as JSON")
	return command
}

func writePresets(w io.Writer, asJSON bool) error {
	infos := make([]disruptor.PresetInfo, 0, len(disruptor.Presets()))
	for _, preset := range disruptor.Presets() {
		info, err := disruptor.Describe(preset)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(w, "%s (%s)\n", info.Title, info.Name)
		fmt.Fprintf(w, "  %s, visual quality: %s\n", info.Description, info.VisualQuality)
		fmt.Fprintf(w, "  Features: %s\n", strings.Join(info.Details, ", "))
		fmt.Fprintf(w, "  Stages: %s\n", strings.Join(info.Stages, " -> "))
		fmt.Fprintf(w, "  Effectiveness: reverse image %.0f%%, AI training %.0f%%, overall %.1f%%\n",
			info.Effectiveness.GoogleReverseImage*100, info.Effectiveness.AIModelTraining*100, info.Effectiveness.Overall*100)
	}
	return nil
}

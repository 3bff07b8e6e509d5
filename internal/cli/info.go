package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rasterlab/geotool/internal/info"
)

var infoCmd = &cobra.Command{
	Use:   "info INPUT",
	Short: "Report raster metadata",
	Long: `Report detailed metadata for a raster: dimensions, sample type,
georeferencing, per-band statistics and storage characteristics.

Examples:
  geotool info scene.tif
  geotool info scene.tif --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Bool("json", false, "emit the report as JSON instead of plain text")
}

func runInfo(cmd *cobra.Command, args []string) error {
	report, err := info.Analyze(args[0])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprint(os.Stdout, info.Render(report))
	return nil
}

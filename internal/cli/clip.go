package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rasterlab/geotool/internal/clip"
	"github.com/rasterlab/geotool/internal/raster"
)

var clipCmd = &cobra.Command{
	Use:   "clip INPUT OUTPUT XOFF YOFF XSIZE YSIZE",
	Short: "Clip a pixel region into a new GeoTIFF",
	Long: `Clip a rectangular pixel region into a new GeoTIFF.

The window is given in pixel coordinates: XOFF and YOFF locate its
top-left corner (0,0 is the raster's top-left pixel), XSIZE and YSIZE
are its dimensions. The window must lie fully inside the source raster.
The output keeps the source projection and gets a geotransform whose
origin is shifted to the window's corner.

Example:
  geotool clip scene.tif chip.tif 1000 2000 512 512`,
	Args: cobra.ExactArgs(6),
	RunE: runClip,
}

func init() {
	rootCmd.AddCommand(clipCmd)
	clipCmd.Flags().BoolP("quiet", "q", false, "suppress the result summary")
}

func runClip(cmd *cobra.Command, args []string) error {
	nums := make([]int, 4)
	names := []string{"XOFF", "YOFF", "XSIZE", "YSIZE"}
	for i, s := range args[2:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", names[i], s, err)
		}
		nums[i] = n
	}
	win := raster.Window{XOff: nums[0], YOff: nums[1], XSize: nums[2], YSize: nums[3]}

	res, err := clip.File(args[0], args[1], win)
	if err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// waypointCmd represents the waypoint command
var waypointCmd = &cobra.Command{
	Use:   "waypoint IMAGE",
	Short: "Write the capture location of an image as GPX waypoint",
	Args:  cobra.ExactArgs(1),
	RunE:  runWaypoint,
}

func init() {
	rootCmd.AddCommand(waypointCmd)

	waypointCmd.Flags().StringP("output", "o", "", "Output filename (default is the image name with .gpx)")
}

func runWaypoint(cmd *cobra.Command, args []string) error {
	inputFilePath := args[0]

	snapshot, err := decodeFile(cmd.Context(), inputFilePath)
	if err != nil {
		return err
	}

	p, ok := geotrack.Resolve(snapshot).Lookup()
	if !ok {
		return fmt.Errorf("'%s': %w", inputFilePath, geotrack.ErrNoLocation)
	}

	content, err := geotrack.WaypointGPX(geotrack.Waypoint{
		Point:     p,
		Name:      filepath.Base(inputFilePath),
		Timestamp: render.CaptureTime(snapshot).Or(time.Time{}),
	})
	if err != nil {
		return err
	}

	outputFilePath, _ := cmd.Flags().GetString("output")
	if outputFilePath == "" {
		outputFilePath = strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + ".gpx"
	}

	if err := os.WriteFile(outputFilePath, content, 0666); err != nil {
		return fmt.Errorf("could not write '%s': %w", outputFilePath, err)
	}

	log.Info().Str("path", outputFilePath).Str("location", p.String()).Msg("waypoint written")

	return nil
}

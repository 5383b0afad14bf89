package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/exifview/cmd/tools"
	"github.com/bgraf/exifview/config"
	"github.com/bgraf/exifview/data"
	"github.com/bgraf/exifview/filesystem"
	"github.com/bgraf/exifview/geotrack"
	"github.com/bgraf/exifview/option"
	"github.com/bgraf/exifview/render"
	"github.com/goodsign/monday"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [IMAGE]",
	Short: "Print the EXIF metadata of an image",
	Long: `Print the grouped EXIF metadata and capture location of an image.
Without an argument the image is picked from the working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolP("all", "A", false, "Print all tags instead of the grouped view")
	inspectCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	inspectCmd.Flags().Bool("feh", false, "Pick the image with feh")
}

func runInspect(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	format, _ := cmd.Flags().GetString("format")
	useFeh, _ := cmd.Flags().GetBool("feh")

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		var err error
		path, err = pickImage(useFeh)
		if err != nil {
			return err
		}
	}

	snapshot, err := decodeFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	home := option.None[geotrack.Point]()
	if config.HasHomeCoords() {
		c := config.HomeCoords()
		home = option.Some(geotrack.Point{Lat: c.Lat, Lon: c.Lon})
	}

	report := buildReport(filepath.Base(path), snapshot, all, home, config.DisplayLocale())

	return writeReport(cmd.OutOrStdout(), report, format)
}

// pickImage lets the user choose an image of the working directory.
func pickImage(useFeh bool) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	if useFeh {
		path, err := tools.FehSelectImage(dir)
		if err != nil {
			return "", fmt.Errorf("feh: %w", err)
		}
		if path == "" {
			return "", fmt.Errorf("no image selected")
		}
		return path, nil
	}

	paths, err := filesystem.GatherFiles([]string{dir}, config.ImageExtensions())
	if err != nil {
		return "", err
	}

	if len(paths) == 0 {
		return "", fmt.Errorf("no images in '%s'", dir)
	}

	options := make([]string, len(paths))
	for i, p := range paths {
		options[i] = filepath.Base(p)
	}

	prompt := &survey.Select{
		Message: "Image",
		Options: options,
	}

	var selected int
	err = survey.AskOne(prompt, &selected)
	exitOnInterrupt(err)
	if err != nil {
		return "", err
	}

	return paths[selected], nil
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}

type reportGroup struct {
	Label string        `json:"label" yaml:"label"`
	Items []render.Item `json:"items" yaml:"items"`
}

type reportLocation struct {
	Lat        float64  `json:"lat" yaml:"lat"`
	Lon        float64  `json:"lon" yaml:"lon"`
	DistanceKm *float64 `json:"distanceKm,omitempty" yaml:"distance_km,omitempty"`
}

type inspectReport struct {
	File     string          `json:"file" yaml:"file"`
	Captured string          `json:"captured,omitempty" yaml:"captured,omitempty"`
	Groups   []reportGroup   `json:"groups,omitempty" yaml:"groups,omitempty"`
	Tags     []render.Item   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Location *reportLocation `json:"location,omitempty" yaml:"location,omitempty"`
}

func buildReport(
	name string,
	snapshot *data.Snapshot,
	all bool,
	home option.Option[geotrack.Point],
	locale monday.Locale,
) inspectReport {
	report := inspectReport{File: name}

	if t, ok := render.CaptureTime(snapshot).Lookup(); ok {
		report.Captured = monday.Format(t, render.CaptureLayout, locale)
	}

	if all {
		report.Tags = render.FullView(snapshot)
	} else {
		for _, g := range render.GroupSnapshot(snapshot) {
			report.Groups = append(report.Groups, reportGroup{Label: g.Category.Label, Items: g.Items})
		}
	}

	if p, ok := geotrack.Resolve(snapshot).Lookup(); ok {
		report.Location = &reportLocation{Lat: p.Lat, Lon: p.Lon}
		if h, ok := home.Lookup(); ok {
			km := geotrack.DistanceKm(h, p)
			report.Location.DistanceKm = &km
		}
	}

	return report
}

func writeReport(w io.Writer, report inspectReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)

	case "yaml":
		return yaml.NewEncoder(w).Encode(report)

	case "text":
		return writeReportText(w, report)
	}

	return fmt.Errorf("unknown format '%s'", format)
}

func writeReportText(w io.Writer, report inspectReport) error {
	fmt.Fprintln(w, report.File)
	if report.Captured != "" {
		fmt.Fprintf(w, "Captured %s\n", report.Captured)
	}

	for _, g := range report.Groups {
		fmt.Fprintf(w, "\n%s\n", g.Label)
		for _, item := range g.Items {
			fmt.Fprintf(w, "  %s: %s\n", item.Name, item.Text)
		}
	}

	if len(report.Tags) > 0 {
		fmt.Fprintln(w)
		for _, item := range report.Tags {
			fmt.Fprintf(w, "%s: %s\n", item.Name, item.Text)
		}
	}

	if loc := report.Location; loc != nil {
		fmt.Fprintf(w, "\nLocation: %.6f, %.6f\n", loc.Lat, loc.Lon)
		if loc.DistanceKm != nil {
			fmt.Fprintf(w, "Distance from home: %s\n", render.FormatDistance(*loc.DistanceKm))
		}
	}

	return nil
}

package cmd

import (
	"github.com/bgraf/exifview/cmd/serve"
	"github.com/bgraf/exifview/config"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the metadata viewer in the browser",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP(
		"resource-dir",
		"R",
		"",
		"Directory containing templates and static files",
	)
	bindFlag(serveCmd, config.KeyResourceDir, "resource-dir")

	serveCmd.Flags().StringP("address", "a", config.DefaultServerAddress(), "Listen address")
	bindFlag(serveCmd, config.KeyServerAddress, "address")
}

package cmd

import (
	"github.com/bgraf/exifview/filesystem"
	"github.com/bgraf/exifview/res"
	"github.com/spf13/cobra"
)

var installResourcesCmd = &cobra.Command{
	Use:   "install-resources DIRECTORY",
	Short: "Write templates and static files for customisation",
	Long: `Write the built-in templates and static files to DIRECTORY.
Serve them with 'exifview serve -R DIRECTORY'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return filesystem.InstallEmbedFS(res.All, args[0])
	},
}

func init() {
	rootCmd.AddCommand(installResourcesCmd)
}

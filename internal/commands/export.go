package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write recorded breaks to breaks_<date>.csv",
	Args:  cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = s.cfg.ExportDir
		}

		path, err := s.tracker.Export(dir)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No breaks to export")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "📄 Exported breaks to %s\n", path)
		return nil
	}),
}

func init() {
	exportCmd.Flags().String("dir", "", "Directory to write to (defaults to SHIFTR_EXPORT_DIR)")
}

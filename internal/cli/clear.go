package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record from the knowledge base",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	if service == nil {
		return errors.New("knowledge base service not configured")
	}

	res := service.Clear(cmd.Context())
	if !res.Success {
		return errors.New(res.Message)
	}

	cmd.Println(res.Message)
	cmd.Printf("Chunks deleted: %d\n", res.ChunksDeleted)
	return nil
}

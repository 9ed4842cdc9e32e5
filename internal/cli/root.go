package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb"
)

var service kb.Service

var rootCmd = &cobra.Command{
	Use:           "kbcli",
	Short:         "Manage the PDF knowledge base vector store",
	Long:          "kbcli ingests a directory of PDF files into a persistent vector store and can wipe that store back to empty.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute wires the service into the command tree and runs it.
func Execute(ctx context.Context, svc kb.Service) error {
	service = svc
	return rootCmd.ExecuteContext(ctx)
}

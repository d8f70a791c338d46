package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nuclide-data/internal/registry"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recorded resources and completed datasets",
	Long: `Status lists the contents of the acquisition registry: every remote
resource that has been fetched or found cached, and every dataset assembly
that ran to completion.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().String("data-dir", "", "base directory containing the registry database (default \".\")")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("data_dir")
	}
	if dataDir == "" {
		dataDir = "."
	}

	store, err := registry.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	resources, err := store.Resources()
	if err != nil {
		return err
	}
	datasets, err := store.Datasets()
	if err != nil {
		return err
	}

	if len(resources) == 0 && len(datasets) == 0 {
		fmt.Println("Registry is empty; run 'nuclide-data fetch' first.")
		return nil
	}

	w := os.Stdout
	if len(datasets) > 0 {
		fmt.Fprintln(w, "Datasets:")
		for _, d := range datasets {
			fmt.Fprintf(w, "  %-36s %3d file(s)  completed %s\n",
				d.Name, d.Files, d.CompletedAt.Format("2006-01-02 15:04:05"))
		}
	}
	if len(resources) > 0 {
		fmt.Fprintln(w, "Resources:")
		for _, r := range resources {
			fmt.Fprintf(w, "  %-10s %12d bytes  %s\n", r.Outcome, r.Size, r.Path)
			fmt.Fprintf(w, "             sha1 %s  %s\n", r.Checksum, r.URL)
		}
	}
	return nil
}

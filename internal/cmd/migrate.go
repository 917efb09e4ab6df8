package cmd

import (
	"github.com/linskybing/projecthub-go/internal/config/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Init(); err != nil {
			return err
		}
		return db.Migrate(db.DB)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

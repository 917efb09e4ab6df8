package cmd

import (
	"fmt"
	"log"

	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/config"
	"github.com/linskybing/projecthub-go/internal/config/db"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/spf13/cobra"
)

var pruneDays int

var pruneAuditCmd = &cobra.Command{
	Use:   "prune-audit",
	Short: "Delete audit log rows older than the retention window",
	Long: `prune-audit removes audit rows older than --days (default AUDIT_RETENTION_DAYS).

It is meant to be run by an external scheduler; the API process itself runs no
background jobs.`,
	RunE: runPruneAudit,
}

func init() {
	rootCmd.AddCommand(pruneAuditCmd)
	pruneAuditCmd.Flags().IntVar(&pruneDays, "days", 0, "Retention in days (0 uses AUDIT_RETENTION_DAYS)")
}

func runPruneAudit(cmd *cobra.Command, args []string) error {
	days := pruneDays
	if days == 0 {
		days = config.AuditRetentionDays
	}
	if err := db.Init(); err != nil {
		return err
	}
	svc := application.NewAuditService(repository.NewRepositories(db.DB))
	n, err := svc.Prune(cmd.Context(), days)
	if err != nil {
		return fmt.Errorf("prune audit logs: %w", err)
	}
	log.Printf("[Audit] removed %d rows older than %d days", n, days)
	return nil
}

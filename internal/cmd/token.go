package cmd

import (
	"fmt"
	"time"

	"github.com/linskybing/projecthub-go/internal/api/middleware"
	"github.com/linskybing/projecthub-go/pkg/types"
	"github.com/spf13/cobra"
)

var (
	tokenUserID   uint
	tokenUsername string
	tokenRole     string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Print a signed bearer token for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch tokenRole {
		case types.RoleStudent, types.RoleTeacher, types.RoleAdmin:
		default:
			return fmt.Errorf("unknown role %q", tokenRole)
		}
		if tokenUserID == 0 {
			return fmt.Errorf("--user is required")
		}
		middleware.Init()
		tok, err := middleware.GenerateToken(tokenUserID, tokenUsername, tokenRole, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().UintVar(&tokenUserID, "user", 0, "User id carried by the token")
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "Username carried by the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", types.RoleStudent, "student, teacher or admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}

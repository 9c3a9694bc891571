package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/templui/momentum/internal/config"
	"github.com/templui/momentum/internal/service"
)

func TokenCmd() *cobra.Command {
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue an API bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cfg.AuthEnabled() {
				return fmt.Errorf("JWT_SECRET is not set, the API accepts requests without a token")
			}
			if expiry <= 0 {
				expiry = cfg.JWTExpiry
			}

			token, expiresAt, err := service.NewTokenService(cfg.JWTSecret, expiry, cfg.AppName).Issue(args[0])
			if err != nil {
				return err
			}
			fmt.Println(token)
			fmt.Printf("expires %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (default JWT_EXPIRY)")
	return cmd
}

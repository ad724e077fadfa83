package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
	srepo "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/repository"
	ssvc "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/service"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage global and per-business settings",
	}
	var tenant string
	set := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a setting, globally or for one business with --tenant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := parseTenant(tenant)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := openPool(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			key, value := args[0], args[1]
			if err := ssvc.New(srepo.New(pool)).Set(cmd.Context(), key, tenantID, value); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}
			shown := value
			if sdomain.IsSecret(key) {
				shown = "********"
			}
			scope := "global"
			if tenantID != nil {
				scope = tenantID.String()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", key, shown, scope)
			return nil
		},
	}
	set.Flags().StringVar(&tenant, "tenant", "", "business id; empty sets the global value")
	cmd.AddCommand(set)
	return cmd
}

// parseTenant returns nil for an empty string.
func parseTenant(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --tenant %q: %w", s, err)
	}
	return &id, nil
}

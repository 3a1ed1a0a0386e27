package cli

import (
	"fmt"
	"strings"

	"rubick-translator/internal/domain"

	"github.com/spf13/cobra"
)

func (r *runner) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change stored settings",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := r.svc.Store.GetSettings(cmd.Context())
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), redact(st))
		},
	}

	set := &cobra.Command{
		Use:   "set key=value...",
		Short: "Merge key=value pairs into the stored settings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := parsePatch(args)
			if err != nil {
				return err
			}
			st, err := r.svc.API.UpdateSettings(patch)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), redact(st))
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}

func parsePatch(args []string) (domain.SettingsPatch, error) {
	patch := domain.SettingsPatch{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", a)
		}
		patch[k] = v
	}
	return patch, nil
}

func redact(st domain.Settings) domain.Settings {
	st.TencentSKey = mask(st.TencentSKey)
	return st
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"rubick-translator/internal/domain"

	"github.com/spf13/cobra"
)

func (r *runner) translateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			res, err := r.svc.API.Translate(domain.TranslationRequest{
				Text:     text,
				Provider: domain.ProviderKind(r.flags.Provider),
				Source:   r.flags.Source,
				Target:   r.flags.Target,
			})
			if err != nil {
				return err
			}
			if r.flags.Output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Translated)
			return err
		},
	}
	cmd.Flags().StringVarP(&r.flags.Provider, "provider", "p", "", "libretranslate, mymemory, google or tencent (default from settings)")
	cmd.Flags().StringVarP(&r.flags.Source, "source", "s", "", "source language code (default auto)")
	cmd.Flags().StringVarP(&r.flags.Target, "target", "t", "", "target language code (default zh, or en for Chinese input)")
	return cmd
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func (r *runner) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect, clear or export translation history",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := r.svc.API.GetHistory()
			if err != nil {
				return err
			}
			if r.flags.Output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), items)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, it := range items {
				when := time.UnixMilli(it.TS).Format("2006-01-02 15:04")
				fmt.Fprintf(tw, "%s\t%s\t%s>%s\t%s\t%s\n", when, it.Provider, it.DetectedSource, it.Target, it.Text, it.Translated)
			}
			return tw.Flush()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := r.svc.API.ClearHistory()
			return err
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write history as csv, tsv or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := r.svc.Exporter.ExportHistory(cmd.Context(), r.flags.ExportFormat)
			if err != nil {
				return err
			}
			if r.flags.ExportOut == "" {
				_, err = cmd.OutOrStdout().Write(res.Content)
				return err
			}
			if err := os.WriteFile(r.flags.ExportOut, res.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", r.flags.ExportOut, err)
			}
			r.log.Infow("history exported", "path", r.flags.ExportOut, "format", r.flags.ExportFormat)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&r.flags.ExportFormat, "format", "f", r.flags.ExportFormat, "csv, tsv or json")
	exportCmd.Flags().StringVar(&r.flags.ExportOut, "out", "", "output file (default stdout)")

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Merge a csv, tsv or json export into history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			format := r.flags.ImportFormat
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(args[0]), ".")
			}
			res, err := r.svc.Importer.Import(cmd.Context(), format, content)
			if err != nil {
				return err
			}
			if r.flags.Output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "parsed %d, kept %d\n", res.Parsed, res.Kept)
			return err
		},
	}
	importCmd.Flags().StringVarP(&r.flags.ImportFormat, "format", "f", "", "csv, tsv or json (default from the file extension)")

	cmd.AddCommand(list, clearCmd, exportCmd, importCmd)
	return cmd
}

package cli

import (
	"fmt"

	"termai/internal/cli/formatter"

	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recently executed commands from the audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.OpenAudit(app.Config.AuditDB)
			if err != nil {
				return err
			}
			defer log.Close()

			entries, err := log.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := app.stdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, formatter.Dim("no commands recorded yet"))
				return nil
			}

			fmt.Fprintln(out, formatter.Header("audit trail"))
			for _, e := range entries {
				status := formatter.Ok("ok")
				if e.ExitCode != 0 {
					status = formatter.Warn(fmt.Sprintf("exit %d", e.ExitCode))
				}
				fmt.Fprintf(out, "%s  %s  %s\n", formatter.Dim(e.RunAt.Format("2006-01-02 15:04")), status, formatter.Command(e.Command))
				fmt.Fprintf(out, "  %s\n", formatter.Dim(e.Instruction))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")

	return cmd
}

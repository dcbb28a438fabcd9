package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
)

func newLogsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs",
		Aliases: []string{"activity"},
		Short:   "Activity log commands (admin only)",
	}

	cmd.AddCommand(newLogsListCmd(c), newLogsDeleteCmd(c))
	return cmd
}

func newLogsListCmd(c *cli) *cobra.Command {
	var action string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activity log entries, newest first",
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			filter := models.Action(strings.ToUpper(action))
			if strings.EqualFold(action, string(models.ActionAll)) {
				filter = models.ActionAll
			} else if !filter.Valid() {
				return fmt.Errorf("unknown action %q", action)
			}

			result, err := s.ActivityService.Page(cmd.Context(), filter, page)
			if err != nil {
				return err
			}
			if result.TotalItems == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity logs")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tUSER\tACTION\tEMPLOYEE\tDETAILS")
			fmt.Fprintln(w, "--\t----\t----\t------\t--------\t-------")
			for _, l := range result.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					l.ID, l.Timestamp.Local().Format(time.DateTime), l.UserEmail, l.Action, dash(l.EmployeeName), dash(l.Details))
			}
			w.Flush()

			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d total)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		}),
	}

	cmd.Flags().StringVar(&action, "action", string(models.ActionAll), "CREATE, UPDATE, DELETE, LOGIN, LOGOUT or all")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newLogsDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one activity log entry",
		Args:  cobra.ExactArgs(1),
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			if err := s.ActivityService.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity log %s\n", args[0])
			return nil
		}),
	}
}

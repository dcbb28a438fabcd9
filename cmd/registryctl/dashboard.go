package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-employee-registry/internal/service"
)

func newDashboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin dashboard",
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			stats, err := s.DashboardService.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total employees: %d\n\n", stats.TotalEmployees)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DESIGNATION\tCOUNT")
			for _, d := range slices.Sorted(maps.Keys(stats.ByDesignation)) {
				fmt.Fprintf(w, "%s\t%d\n", d, stats.ByDesignation[d])
			}
			w.Flush()

			if len(stats.RecentAdditions) == 0 {
				return nil
			}

			fmt.Fprintln(out, "\nRecent additions:")
			for _, l := range stats.RecentAdditions {
				fmt.Fprintf(out, "  %s  %s by %s\n", l.Timestamp.Local().Format(time.DateTime), dash(l.EmployeeName), l.UserEmail)
			}
			return nil
		}),
	}
}

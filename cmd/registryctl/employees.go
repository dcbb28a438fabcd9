package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-employee-registry/internal/listing"
	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
)

func newEmployeesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Employee management commands",
	}

	cmd.AddCommand(
		newEmployeesListCmd(c),
		newEmployeesGetCmd(c),
		newEmployeesCreateCmd(c),
		newEmployeesUpdateCmd(c),
		newEmployeesDeleteCmd(c),
	)
	return cmd
}

func newEmployeesListCmd(c *cli) *cobra.Command {
	query := models.DefaultListingQuery()
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees with search, designation filter, sort and paging",
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			query.Sort = models.SortOrder(sortOrder)
			if query.Sort != models.SortAsc && query.Sort != models.SortDesc {
				return fmt.Errorf("unknown sort order %q", sortOrder)
			}

			records, err := s.EmployeeService.List(cmd.Context())
			if err != nil {
				return err
			}

			page := listing.Apply(records, query, listing.PageSizeEmployees)
			if page.TotalItems == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No employees found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESIGNATION\tEMAIL\tPHONE")
			fmt.Fprintln(w, "--\t----\t-----------\t-----\t-----")
			for _, e := range page.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, dash(e.Designation), dash(e.Email), dash(e.Phone))
			}
			w.Flush()

			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d total)\n", page.Page, page.TotalPages, page.TotalItems)
			return nil
		}),
	}

	cmd.Flags().StringVar(&query.Search, "search", "", "case-insensitive name or email substring")
	cmd.Flags().StringVar(&query.Designation, "designation", models.DesignationAll, "exact designation, or all")
	cmd.Flags().StringVar(&sortOrder, "sort", string(models.SortAsc), "name order: asc or desc")
	cmd.Flags().IntVar(&query.Page, "page", 1, "page number")
	return cmd
}

func newEmployeesGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			e, err := s.EmployeeService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printEmployee(cmd, e)
			return nil
		}),
	}
}

type employeeFlags struct {
	employee models.Employee
}

func (f *employeeFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.employee.Name, "name", "", "full name")
	flags.StringVar(&f.employee.Designation, "designation", "", "job title")
	flags.StringVar(&f.employee.Email, "email", "", "contact email")
	flags.StringVar(&f.employee.Phone, "phone", "", "phone number")
	flags.StringVar(&f.employee.DOB, "dob", "", "date of birth, YYYY-MM-DD")
	flags.StringVar(&f.employee.Photo, "photo", "", "photo URL")
}

// mergeInto copies the flags the user set over e.
func (f *employeeFlags) mergeInto(flags *pflag.FlagSet, e models.Employee) models.Employee {
	if flags.Changed("name") {
		e.Name = f.employee.Name
	}
	if flags.Changed("designation") {
		e.Designation = f.employee.Designation
	}
	if flags.Changed("email") {
		e.Email = f.employee.Email
	}
	if flags.Changed("phone") {
		e.Phone = f.employee.Phone
	}
	if flags.Changed("dob") {
		e.DOB = f.employee.DOB
	}
	if flags.Changed("photo") {
		e.Photo = f.employee.Photo
	}
	return e
}

func newEmployeesCreateCmd(c *cli) *cobra.Command {
	var f employeeFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			e, err := s.EmployeeService.Create(cmd.Context(), f.employee)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created employee %s (%s)\n", e.Name, e.ID)
			return nil
		}),
	}

	f.bind(cmd.Flags())
	return cmd
}

func newEmployeesUpdateCmd(c *cli) *cobra.Command {
	var f employeeFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			current, err := s.EmployeeService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			e, err := s.EmployeeService.Update(cmd.Context(), args[0], f.mergeInto(cmd.Flags(), current))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated employee %s (%s)\n", e.Name, e.ID)
			return nil
		}),
	}

	f.bind(cmd.Flags())
	return cmd
}

func newEmployeesDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			if err := s.EmployeeService.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted employee %s\n", args[0])
			return nil
		}),
	}
}

func printEmployee(cmd *cobra.Command, e models.Employee) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", e.ID)
	fmt.Fprintf(w, "Name:\t%s\n", e.Name)
	fmt.Fprintf(w, "Designation:\t%s\n", dash(e.Designation))
	fmt.Fprintf(w, "Email:\t%s\n", dash(e.Email))
	fmt.Fprintf(w, "Phone:\t%s\n", dash(e.Phone))
	fmt.Fprintf(w, "Date of birth:\t%s\n", dash(e.DOB))
	w.Flush()
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

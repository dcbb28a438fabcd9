package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
)

func newRegisterCmd(c *cli) *cobra.Command {
	var reg models.Registration
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  `Create a new account. Registration does not log the new user in.`,
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			reg.Role = models.Role(role)
			user, err := s.SessionService.Register(cmd.Context(), reg)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s) as %s\n", user.Email, user.ID, user.Role)
			return nil
		}),
	}

	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Name, "name", "", "display name")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password, at least 6 characters")
	cmd.Flags().StringVar(&role, "role", "", "admin or employee (default employee)")
	cmd.Flags().StringVar(&reg.Photo, "photo", "", "photo URL; a generated avatar is used when empty")
	return cmd
}

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			session, err := s.SessionService.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", session.User.Name, session.User.Role)
			return nil
		}),
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			if err := s.SessionService.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		}),
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: c.withServices(func(cmd *cobra.Command, args []string, s *service.ClientServices) error {
			user, ok := s.SessionService.CurrentUser(cmd.Context())
			if !ok {
				return service.ErrNotAuthenticated
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:    %s\n", user.ID)
			fmt.Fprintf(out, "Name:  %s\n", user.Name)
			fmt.Fprintf(out, "Email: %s\n", user.Email)
			fmt.Fprintf(out, "Role:  %s\n", user.Role)
			return nil
		}),
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/opty-search/internal/api/client"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

func usersCmd() *cobra.Command {
	usersRoot := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
		Long: "Manage the user accounts stored by the API server. The server must\n" +
			"be configured with a database for these commands to work.",
	}

	usersRoot.AddCommand(
		usersListCmd(),
		usersGetCmd(),
		usersCreateCmd(),
		usersUpdateCmd(),
		usersRoleCmd(),
		usersDeleteCmd(),
	)

	return usersRoot
}

func usersListCmd() *cobra.Command {
	var params apiclient.ListUsersParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active users",
		Example: `  optyctl users list
  optyctl users list --role supervisor --limit 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListUsers(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			if err := printUsersTable(cmd.OutOrStdout(), resp.Users); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d users\n", len(resp.Users), resp.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Role, "role", "", "filter by role (user, supervisor)")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of users")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of users to skip")

	return cmd
}

func usersGetCmd() *cobra.Command {
	var byEmail bool

	cmd := &cobra.Command{
		Use:   "get <auth-id|email>",
		Short: "Show user details",
		Example: `  optyctl users get auth0|123
  optyctl users get ana@example.com --email`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			var (
				u   *domain.User
				err error
			)
			if byEmail {
				u, err = c.GetUserByEmail(cmd.Context(), args[0])
			} else {
				u, err = c.GetUser(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			return printUserDetail(cmd.OutOrStdout(), u)
		},
	}
	cmd.Flags().BoolVar(&byEmail, "email", false, "look the user up by email")

	return cmd
}

func usersCreateCmd() *cobra.Command {
	var req apiclient.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a user",
		Example: `  optyctl users create --auth-id "auth0|123" --email ana@example.com --name Ana
  optyctl users create --auth-id "auth0|456" --email bia@example.com --role supervisor`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.AuthID == "" || req.Email == "" {
				return fmt.Errorf("--auth-id and --email are required")
			}
			u, err := newClient().CreateUser(cmd.Context(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", u.AuthID, u.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.AuthID, "auth-id", "", "identifier issued by the auth provider")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Role, "role", "", "role (user, supervisor); defaults to user")

	return cmd
}

func usersUpdateCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:     "update <auth-id>",
		Short:   "Update a user's name or email",
		Example: `  optyctl users update "auth0|123" --name "Ana Souza"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.UserUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("email") {
				upd.Email = &email
			}
			if upd.Empty() {
				return fmt.Errorf("at least one of --name or --email is required")
			}
			u, err := newClient().UpdateUser(cmd.Context(), args[0], upd)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			return printUserDetail(cmd.OutOrStdout(), u)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email address")

	return cmd
}

func usersRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "role <email> <role>",
		Short:   "Change a user's role",
		Example: `  optyctl users role ana@example.com supervisor`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := domain.ParseRole(args[1])
			if err != nil {
				return err
			}
			u, err := newClient().UpdateRole(cmd.Context(), args[0], role)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s\n", u.Email, u.Role)
			return nil
		},
	}
}

func usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <auth-id>",
		Short:   "Deactivate a user",
		Example: `  optyctl users delete "auth0|123"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
			return nil
		},
	}
}

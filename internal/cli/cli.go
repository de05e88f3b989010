// Package cli implements the rusty command-line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"rusty/internal/apperrors"
	"rusty/internal/models"

	"github.com/spf13/cobra"
)

// UserManager is the user management surface the CLI drives.
type UserManager interface {
	CreateUser(ctx context.Context, username, password string, roleCodes []string) (*models.User, []models.Role, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// EventConsumer streams catalog events.
type EventConsumer interface {
	ConsumeEvents(ctx context.Context, handler func(models.Event) error) error
}

// Deps provide command dependencies lazily so that a command only connects
// to what it uses.
type Deps struct {
	Users  func() (UserManager, error)
	Events func() (EventConsumer, error)
}

// NewRootCommand builds the command tree writing its output to out.
func NewRootCommand(deps Deps, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "rusty",
		Short:         "Rusty commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	users := &cobra.Command{
		Use:   "users",
		Short: "User management",
	}
	users.AddCommand(
		newCreateUserCommand(deps),
		newListUsersCommand(deps),
		newDeleteUserCommand(deps),
	)

	events := &cobra.Command{
		Use:   "events",
		Short: "Catalog events",
	}
	events.AddCommand(newTailEventsCommand(deps))

	root.AddCommand(users, events)
	return root
}

func newCreateUserCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "create <username> <password> <role,role,...>",
		Short: "Create a new user",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := deps.Users()
			if err != nil {
				return err
			}

			user, roles, err := manager.CreateUser(cmd.Context(), args[0], args[1], splitRoles(args[2:]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User created: %s\n", formatUser(*user))
			fmt.Fprintf(out, "Roles assigned: %s\n", formatRoles(roles))
			return nil
		},
	}
}

func newListUsersCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List existing users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := deps.Users()
			if err != nil {
				return err
			}

			users, err := manager.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			for _, user := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%s roles=%s\n", formatUser(user), formatRoles(user.Roles))
			}
			return nil
		},
	}
}

func newDeleteUserCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete existing users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return apperrors.Errorf(apperrors.Validation, "delete user", "invalid id %q", args[0])
			}

			manager, err := deps.Users()
			if err != nil {
				return err
			}
			if err := manager.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d deleted\n", id)
			return nil
		},
	}
}

func newTailEventsCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "tail",
		Short: "Print catalog events as they are published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			consumer, err := deps.Events()
			if err != nil {
				return err
			}
			return consumer.ConsumeEvents(cmd.Context(), func(event models.Event) error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s id=%d event=%s\n",
					event.OccurredAt.Format(time.RFC3339), event.Type, event.EntityID, event.ID)
				return err
			})
		},
	}
}

// splitRoles accepts "a,b c" as well as "a" "b" "c".
func splitRoles(args []string) []string {
	var codes []string
	for _, arg := range args {
		for _, code := range strings.Split(arg, ",") {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
	}
	return codes
}

func formatUser(u models.User) string {
	return fmt.Sprintf("id=%d username=%s created_at=%s", u.ID, u.Username, u.CreatedAt.Format(time.RFC3339))
}

func formatRoles(roles []models.Role) string {
	codes := make([]string, 0, len(roles))
	for _, role := range roles {
		codes = append(codes, role.Code)
	}
	return "[" + strings.Join(codes, ",") + "]"
}

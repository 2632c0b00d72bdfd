// adminctl is the operator CLI for the admin backend. It talks to the
// database directly, so it works before the HTTP service has any users to
// authenticate.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/internal/admin/store/drivers/sqlite"
	"github.com/nextx/admin-api/pkg/cryptox"
	"github.com/nextx/admin-api/pkg/idx"
)

var (
	flagDB       string
	flagScopes   []string
	flagRoles    []string
	flagAdmin    bool
	flagFullName string
	flagEmail    string
)

func main() {
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Operator CLI for the admin backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagDB, "db", "admin.db", "path to the SQLite database file")

	createUser := &cobra.Command{
		Use:   "createuser",
		Short: "Create a user account, prompting for username and password",
		RunE:  runCreateUser,
	}
	createUser.Flags().StringSliceVar(&flagScopes, "scopes", nil, "scopes to assign, e.g. users:read,users:write")
	createUser.Flags().StringSliceVar(&flagRoles, "roles", nil, "roles to assign")
	createUser.Flags().BoolVar(&flagAdmin, "admin", false, "shorthand for assigning the Admin role and every scope")
	createUser.Flags().StringVar(&flagFullName, "full-name", "", "display name")
	createUser.Flags().StringVar(&flagEmail, "email", "", "email address")
	root.AddCommand(createUser)

	root.AddCommand(&cobra.Command{
		Use:   "scopes",
		Short: "Print the scope catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range domain.ScopeCatalog() {
				fmt.Printf("%-28s %s\n", s.Name, s.Description)
			}
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	username, err := promptLine("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return errors.New("username must not be empty")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Repeat for confirmation: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	scopes := flagScopes
	roles := flagRoles
	if flagAdmin {
		roles = appendMissing(roles, domain.RoleAdmin)
		for _, s := range domain.ScopeCatalog() {
			scopes = appendMissing(scopes, s.Name)
		}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	st, err := sqlite.NewStore(flagDB)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		return err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		FullName:     flagFullName,
		Email:        flagEmail,
		Scopes:       scopes,
		Roles:        roles,
	}
	if err := st.Users().CreateUser(context.Background(), u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("user %q already exists", username)
		}
		return err
	}

	fmt.Printf("created user %s (id %s)\n", username, u.ID)
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func appendMissing(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

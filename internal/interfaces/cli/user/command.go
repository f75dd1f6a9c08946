package user

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	userdomain "gmao/internal/domain/user"
	"gmao/internal/infrastructure/auth"
	"gmao/internal/infrastructure/config"
	"gmao/internal/infrastructure/database"
	"gmao/internal/infrastructure/repository"
	"gmao/internal/shared/authorization"
	"gmao/internal/shared/biztime"
	"gmao/internal/shared/logger"
)

var (
	env         string
	username    string
	displayName string
	role        string
)

// NewCommand builds the user administration command. It writes through the
// repository directly so the first admin can be created before any account
// exists to authenticate with.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User administration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&displayName, "display-name", "d", "", "Display name (defaults to username)")
	cmd.Flags().StringVarP(&role, "role", "r", "admin", "Role (admin, technicien, read_only)")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := userdomain.NewUser(username, displayName, hash, authorization.ParseRole(role))
	if err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	userRepo := repository.NewUserRepository(database.Get())
	if err := userRepo.Save(context.Background(), u); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("user created",
		"user_id", u.ID(),
		"username", u.Username(),
		"role", u.Role().String())

	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	password := strings.TrimSpace(string(first))
	if password != strings.TrimSpace(string(second)) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	return password, nil
}

package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kopeckyd/vocabulaire/internal/config"
	"github.com/kopeckyd/vocabulaire/internal/database"
)

// ProvisionCommand creates a user and their catalogue so the HTTP API has
// someone to serve.
type ProvisionCommand struct {
	Username     string
	FirstName    string
	LastName     string
	Email        string
	DatabasePath string
}

func NewProvisionCommand() *ProvisionCommand {
	return &ProvisionCommand{}
}

func (cmd *ProvisionCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("provision", flag.ExitOnError)

	fs.StringVar(&cmd.Username, "username", "", "Username for the new account (required)")
	fs.StringVar(&cmd.FirstName, "first-name", "", "First name of the account holder")
	fs.StringVar(&cmd.LastName, "last-name", "", "Last name of the account holder")
	fs.StringVar(&cmd.Email, "email", "", "Email of the account holder")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s provision -username <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a user account and its word catalogue. The HTTP API serves the\n")
		fmt.Fprintf(os.Stderr, "provisioned user; run this once before starting the server.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s provision -username reader -email reader@example.com\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" {
		return fmt.Errorf("required flag -username not provided")
	}

	return nil
}

func (cmd *ProvisionCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if existing, err := db.GetUserByUsername(cmd.Username); err == nil {
		return fmt.Errorf("user %q already exists (catalogue %d)", existing.Username, existing.Catalogue.ID)
	}

	user, err := db.ProvisionUser(cmd.Username, cmd.FirstName, cmd.LastName, cmd.Email)
	if err != nil {
		return err
	}

	fmt.Printf("Provisioned user %q with catalogue %d\n", user.Username, user.Catalogue.ID)
	return nil
}

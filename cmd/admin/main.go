// Command admin holds maintenance commands of the recipe catalog.
//
// Usage:
//
//	admin createsuperuser -email admin@example.com -name Admin -password secret [-- <config flags>]
//	admin healthcheck [-address localhost:8080] [-timeout 5s]
//
// For createsuperuser, arguments after "--" are parsed as the server
// configuration flags (-d, -driver, -c, ...). Environment variables are
// honored as well. healthcheck exits with a non-zero status unless the
// server reports that it is healthy.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-recipe-catalog/internal/adapter"
	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/service"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

const (
	cmdCreateSuperuser = "createsuperuser"
	cmdHealthcheck     = "healthcheck"
)

// passwordEnv is read when -password is not given, to keep the password
// out of the process list.
const passwordEnv = "ADMIN_PASSWORD"

var errUnknownCommand = errors.New("unknown command")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case cmdCreateSuperuser:
		return createSuperuser(ctx, args[1:], out)
	case cmdHealthcheck:
		return healthcheck(ctx, args[1:], out)
	default:
		return usageError()
	}
}

func usageError() error {
	return fmt.Errorf("%w; usage:\n"+
		"  admin %s -email <email> -name <name> [-password <password>] [-- <config flags>]\n"+
		"  admin %s [-address <host:port>] [-timeout <duration>]",
		errUnknownCommand, cmdCreateSuperuser, cmdHealthcheck)
}

func createSuperuser(ctx context.Context, args []string, out io.Writer) error {
	user, configArgs, err := parseSuperuserArgs(args, os.Getenv(passwordEnv))
	if err != nil {
		return err
	}

	cfg, err := config.GetStructuredConfig(configArgs)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("recipe-admin", cfg.App.LogLevel)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	created, err := services.UserService.CreateSuperuser(ctx, user)
	if err != nil {
		return fmt.Errorf("error creating superuser: %w", err)
	}

	fmt.Fprintf(out, "Superuser %s created successfully.\n", created.Email)
	return nil
}

// parseSuperuserArgs reads the createsuperuser flags. The returned slice
// holds whatever follows "--".
func parseSuperuserArgs(args []string, envPassword string) (models.User, []string, error) {
	var user models.User

	fs := flag.NewFlagSet(cmdCreateSuperuser, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&user.Email, "email", "", "Email of the superuser")
	fs.StringVar(&user.Name, "name", "", "Display name of the superuser")
	fs.StringVar(&user.Password, "password", "", "Password of the superuser (or "+passwordEnv+")")

	if err := fs.Parse(args); err != nil {
		return models.User{}, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if user.Password == "" {
		user.Password = envPassword
	}

	return user, fs.Args(), nil
}

// healthcheck asks a running server for its health, e.g. from a container
// probe.
func healthcheck(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(cmdHealthcheck, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	address := fs.String("address", "localhost:8080", "Address of the running server")
	timeout := fs.Duration("timeout", 5*time.Second, "Request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	client, err := adapter.NewHTTPServerAdapter(*address, *timeout, logger.Nop())
	if err != nil {
		return err
	}

	status, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("server is unhealthy: %w", err)
	}

	fmt.Fprintf(out, "%s (version %s)\n", status.Status, status.Version)
	return nil
}

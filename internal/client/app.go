package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/internal/service"
	"github.com/MKhiriev/go-cyr-records/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App is the records client: one [App.Run] call executes one sub-command.
type App struct {
	services       *service.Services
	authCollection string
	buildInfo      models.AppBuildInfo

	out          io.Writer
	readPassword passwordReader
	logger       *logger.Logger

	commands map[string]command
}

var _ Client = (*App)(nil)

func NewApp(services *service.Services, authCollection string, buildInfo models.AppBuildInfo, out io.Writer, log *logger.Logger) *App {
	a := &App{
		services:       services,
		authCollection: authCollection,
		buildInfo:      buildInfo,
		out:            out,
		readPassword:   terminalPassword,
		logger:         log,
	}

	a.commands = map[string]command{
		"derive":   {"derive <login>", a.derive},
		"check":    {"check <login> [fio]", a.check},
		"register": {"register -login <login> -fio <fio> -password <password> [-email <email>] [-auto-login]", a.register},
		"login":    {"login (-login <cyrillic login> | -identity <username or email>) -password <password>", a.login},
		"logout":   {"logout", a.logout},
		"whoami":   {"whoami", a.whoami},
		"list":     {"list <collection> [-page n] [-per-page n] [-filter expr] [-param name=value]... [-sort spec] [-expand rel] [-fields list]", a.list},
		"get":      {"get <collection> <id> [-expand rel] [-fields list]", a.get},
		"create":   {"create <collection> -data <json>", a.create},
		"update":   {"update <collection> <id> -data <json>", a.update},
		"remove":   {"remove <collection> <id> [-archive [-field name] [-value value]]", a.remove},
		"flash":    {"flash [-set message [-kind info|success|error]]", a.flash},
		"version":  {"version", a.version},
	}

	return a
}

// Run executes the sub-command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	log := a.logger.With().Str("command", name).Logger()
	ctx = log.WithContext(ctx)
	log.Debug().Msg("running command")

	if err := cmd.run(ctx, args[1:]); err != nil {
		log.Debug().Err(err).Msg("command failed")
		return err
	}
	return nil
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "usage: client [flags] <command> [args]")
	for _, name := range commandOrder {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

var commandOrder = []string{
	"derive", "check", "register", "login", "logout", "whoami",
	"list", "get", "create", "update", "remove", "flash", "version",
}

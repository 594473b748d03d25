package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-cyr-records/internal/apperror"
	"github.com/MKhiriev/go-cyr-records/internal/identity"
	"github.com/MKhiriev/go-cyr-records/internal/service"
	"github.com/MKhiriev/go-cyr-records/models"
)

func (a *App) derive(_ context.Context, args []string) error {
	if len(args) != 1 {
		return a.usageError("derive")
	}
	fmt.Fprintln(a.out, identity.DeriveIdentity(args[0]))
	return nil
}

func (a *App) check(_ context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return a.usageError("check")
	}

	if err := identity.ValidateLogin(args[0]); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, err)
	}
	if len(args) == 2 && !identity.ValidateDisplayName(args[1]) {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, identity.ErrDisplayNameInvalid)
	}

	fmt.Fprintf(a.out, "ok: %s\n", identity.DeriveIdentity(args[0]))
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	var (
		req       models.CyrRegistration
		autoLogin bool
	)
	fs := newFlagSet("register")
	fs.StringVar(&req.LoginCyr, "login", "", "Cyrillic login")
	fs.StringVar(&req.DisplayName, "fio", "", "full name in Cyrillic")
	fs.StringVar(&req.Password, "password", "", "password (prompted when omitted)")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.BoolVar(&autoLogin, "auto-login", false, "log in after registration")

	if pos, err := parseInterleaved(fs, args); err != nil || len(pos) != 0 {
		return a.usageError("register")
	}

	var err error
	if req.Password, err = a.passwordOrPrompt(req.Password); err != nil {
		return err
	}

	record, err := a.services.AuthService.RegisterCyr(ctx, req, a.authCollection, models.RegisterOptions{AutoLogin: autoLogin})
	if err != nil {
		return err
	}

	a.services.FlashService.SetFlash(ctx, "registered "+record.String("username"), models.FlashSuccess)
	return a.printJSON(record)
}

func (a *App) login(ctx context.Context, args []string) error {
	var loginCyr, loginIdentity, password string
	fs := newFlagSet("login")
	fs.StringVar(&loginCyr, "login", "", "Cyrillic login")
	fs.StringVar(&loginIdentity, "identity", "", "username or email")
	fs.StringVar(&password, "password", "", "password (prompted when omitted)")

	if pos, err := parseInterleaved(fs, args); err != nil || len(pos) != 0 {
		return a.usageError("login")
	}
	if (loginCyr == "") == (loginIdentity == "") {
		return a.usageError("login")
	}

	password, err := a.passwordOrPrompt(password)
	if err != nil {
		return err
	}

	var result models.AuthResult
	if loginCyr != "" {
		result, err = a.services.AuthService.LoginCyr(ctx, loginCyr, password, a.authCollection)
	} else {
		result, err = a.services.AuthService.Login(ctx, loginIdentity, password, a.authCollection)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s\n", displayIdentity(result.Record))
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return a.usageError("logout")
	}
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}

	a.services.FlashService.SetFlash(ctx, "logged out", models.FlashInfo)
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) whoami(_ context.Context, args []string) error {
	if len(args) != 0 {
		return a.usageError("whoami")
	}
	if !a.services.AuthService.IsAuthed() {
		return ErrNotAuthenticated
	}

	record := a.services.AuthService.AuthRecord()
	fmt.Fprintf(a.out, "%s (admin: %t)\n", displayIdentity(record), a.services.AuthService.IsMaybeAdmin())
	return a.printJSON(record)
}

func (a *App) list(ctx context.Context, args []string) error {
	var opts models.ListOptions
	params := make(map[string]any)

	fs := newFlagSet("list")
	fs.IntVar(&opts.Page, "page", 0, "page number")
	fs.IntVar(&opts.PerPage, "per-page", 0, "page size")
	fs.StringVar(&opts.Filter, "filter", "", "filter expression with optional {:name} placeholders")
	fs.StringVar(&opts.Sort, "sort", "", "sort spec")
	fs.StringVar(&opts.Expand, "expand", "", "relations to expand")
	fs.StringVar(&opts.Fields, "fields", "", "fields to return")
	fs.Func("param", "filter placeholder value as name=value", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return fmt.Errorf("expected name=value, got %q", s)
		}
		params[name] = value
		return nil
	})

	pos, err := parseInterleaved(fs, args)
	if err != nil || len(pos) != 1 {
		return a.usageError("list")
	}
	opts.Filter = service.Filter(opts.Filter, params)

	result, err := a.services.RecordService.List(ctx, pos[0], opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "page %d/%d, %d total\n", result.Page, result.TotalPages, result.TotalItems)
	return a.printJSON(result.Items)
}

func (a *App) get(ctx context.Context, args []string) error {
	var query models.RecordQuery
	fs := newFlagSet("get")
	fs.StringVar(&query.Expand, "expand", "", "relations to expand")
	fs.StringVar(&query.Fields, "fields", "", "fields to return")

	pos, err := parseInterleaved(fs, args)
	if err != nil || len(pos) != 2 {
		return a.usageError("get")
	}

	record, err := a.services.RecordService.GetOne(ctx, pos[0], pos[1], query)
	if err != nil {
		return err
	}
	return a.printJSON(record)
}

func (a *App) create(ctx context.Context, args []string) error {
	var raw string
	fs := newFlagSet("create")
	fs.StringVar(&raw, "data", "", "record fields as a JSON object")

	pos, err := parseInterleaved(fs, args)
	if err != nil || len(pos) != 1 {
		return a.usageError("create")
	}
	data, err := decodeData(raw)
	if err != nil {
		return err
	}

	record, err := a.services.RecordService.Create(ctx, pos[0], data)
	if err != nil {
		return err
	}

	a.services.FlashService.SetFlash(ctx, "created "+record.ID(), models.FlashSuccess)
	return a.printJSON(record)
}

func (a *App) update(ctx context.Context, args []string) error {
	var raw string
	fs := newFlagSet("update")
	fs.StringVar(&raw, "data", "", "changed fields as a JSON object")

	pos, err := parseInterleaved(fs, args)
	if err != nil || len(pos) != 2 {
		return a.usageError("update")
	}
	data, err := decodeData(raw)
	if err != nil {
		return err
	}

	record, err := a.services.RecordService.Update(ctx, pos[0], pos[1], data)
	if err != nil {
		return err
	}

	a.services.FlashService.SetFlash(ctx, "updated "+record.ID(), models.FlashSuccess)
	return a.printJSON(record)
}

func (a *App) remove(ctx context.Context, args []string) error {
	var mode models.RemoveMode
	fs := newFlagSet("remove")
	fs.BoolVar(&mode.Archive, "archive", false, "archive instead of deleting")
	fs.StringVar(&mode.Field, "field", "", "archive field (default status)")
	fs.StringVar(&mode.Value, "value", "", "archive value (default archived)")

	pos, err := parseInterleaved(fs, args)
	if err != nil || len(pos) != 2 {
		return a.usageError("remove")
	}

	record, err := a.services.RecordService.Remove(ctx, pos[0], pos[1], &mode)
	if err != nil {
		return err
	}

	if mode.Archive {
		a.services.FlashService.SetFlash(ctx, "archived "+pos[1], models.FlashSuccess)
		return a.printJSON(record)
	}

	a.services.FlashService.SetFlash(ctx, "deleted "+pos[1], models.FlashSuccess)
	fmt.Fprintf(a.out, "deleted %s\n", pos[1])
	return nil
}

func (a *App) flash(ctx context.Context, args []string) error {
	var message, kind string
	fs := newFlagSet("flash")
	fs.StringVar(&message, "set", "", "store a flash message")
	fs.StringVar(&kind, "kind", models.FlashInfo, "flash kind")

	if pos, err := parseInterleaved(fs, args); err != nil || len(pos) != 0 {
		return a.usageError("flash")
	}

	if message != "" {
		a.services.FlashService.SetFlash(ctx, message, kind)
		return nil
	}

	if flash, ok := a.services.FlashService.ConsumeFlash(ctx); ok {
		fmt.Fprintf(a.out, "[%s] %s\n", flash.Kind, flash.Message)
	}
	return nil
}

func (a *App) version(_ context.Context, _ []string) error {
	fmt.Fprintln(a.out, a.buildInfo.String())
	return nil
}

func (a *App) usageError(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, a.commands[name].usage)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseInterleaved parses fs over args, collecting positional arguments
// wherever they appear between flags.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func decodeData(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("%w: -data must be a JSON object: %w", apperror.ErrInvalidArgument, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: -data must be a JSON object", apperror.ErrInvalidArgument)
	}
	return data, nil
}

func displayIdentity(record models.Record) string {
	if name := record.String("username"); name != "" {
		return name
	}
	if email := record.String("email"); email != "" {
		return email
	}
	return record.ID()
}

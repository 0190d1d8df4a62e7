package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contacts-book/internal/adapter"
	"github.com/MKhiriev/go-contacts-book/models"
)

var ErrUnknownCommand = errors.New("unknown command")

const usage = `usage: contacts-client <command> [flags] [args]

commands:
  register -u USER -p PASS
  login    -u USER -p PASS
  logout
  unregister
  list
  find     ID
  add      -name N -surename S -email E -phone P -dob YYYY-MM-DD [-description D]
  update   ID [-name N] [-surename S] [-email E] [-phone P] [-dob YYYY-MM-DD] [-description D|-no-description]
  delete   ID
  search   [-name N] [-surename S] [-email E]
  birthdays
  version
`

type command func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error

var commands = map[string]command{
	"register":   runRegister,
	"login":      runLogin,
	"logout":     authed(runLogout),
	"unregister": authed(runUnregister),
	"list":       authed(runList),
	"find":       authed(runFind),
	"add":        authed(runAdd),
	"update":     authed(runUpdate),
	"delete":     authed(runDelete),
	"search":     authed(runSearch),
	"birthdays":  authed(runBirthdays),
	"version":    runVersion,
}

// run dispatches args[0] to its command.
func run(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return ErrUnknownCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		// the error reaches the log file, so the input is echoed to out only
		fmt.Fprintf(out, "unknown command %q\n%s", args[0], usage)
		return ErrUnknownCommand
	}
	return cmd(ctx, a, args[1:], out)
}

// commandName is the loggable part of args. Flag values may carry
// credentials and are never included; unrecognized input is not echoed.
func commandName(args []string) string {
	if len(args) == 0 {
		return "none"
	}
	if _, ok := commands[args[0]]; !ok {
		return "unknown"
	}
	return args[0]
}

// authed retries cmd once after refreshing the token pair when the server
// rejects the access token.
func authed(cmd command) command {
	return func(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
		err := cmd(ctx, a, args, out)
		if !errors.Is(err, adapter.ErrUnauthorized) || a.Tokens().RefreshToken == "" {
			return err
		}

		if _, refreshErr := a.Refresh(ctx); refreshErr != nil {
			return errors.Join(err, refreshErr)
		}
		return cmd(ctx, a, args, out)
	}
}

func credentialsFlags(name string, args []string) (models.Credentials, error) {
	var creds models.Credentials
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&creds.Username, "u", "", "username")
	fs.StringVar(&creds.Password, "p", "", "password")
	if err := fs.Parse(args); err != nil {
		return creds, err
	}
	return creds, nil
}

func runRegister(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	creds, err := credentialsFlags("register", args)
	if err != nil {
		return err
	}

	user, err := a.Register(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "registered %s (id %d)\n", user.Username, user.ID)
	return nil
}

func runLogin(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	creds, err := credentialsFlags("login", args)
	if err != nil {
		return err
	}

	if _, err = a.Login(ctx, creds); err != nil {
		return err
	}
	fmt.Fprintln(out, "logged in")
	return nil
}

func runLogout(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
	if err := a.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "logged out")
	return nil
}

func runUnregister(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
	if err := a.DeleteAccount(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "account deleted")
	return nil
}

func runList(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
	contacts, err := a.ListContacts(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, contacts)
}

func runFind(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	id, err := contactIDArg(args)
	if err != nil {
		return err
	}

	contact, err := a.FindContact(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(out, contact)
}

func runAdd(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	var contact models.Contact
	var dob, description string

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.StringVar(&contact.Name, "name", "", "first name")
	fs.StringVar(&contact.Surename, "surename", "", "last name")
	fs.StringVar(&contact.Email, "email", "", "email address")
	fs.StringVar(&contact.PhoneNumber, "phone", "", "phone number")
	fs.StringVar(&dob, "dob", "", "date of birth, YYYY-MM-DD")
	fs.StringVar(&description, "description", "", "optional description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if dob != "" {
		date, err := models.ParseDate(dob)
		if err != nil {
			return fmt.Errorf("invalid -dob: %w", err)
		}
		contact.DateOfBirth = date
	}
	if isFlagSet(fs, "description") {
		contact.Description = &description
	}

	created, err := a.AddContact(ctx, contact)
	if err != nil {
		return err
	}
	return printJSON(out, created)
}

func runUpdate(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	id, err := contactIDArg(args)
	if err != nil {
		return err
	}

	update, err := parseUpdateFlags(args[1:])
	if err != nil {
		return err
	}

	updated, err := a.UpdateContact(ctx, id, update)
	if err != nil {
		return err
	}
	return printJSON(out, updated)
}

// parseUpdateFlags turns the flags actually given into present fields of a
// partial update. -no-description sends an explicit null.
func parseUpdateFlags(args []string) (models.ContactUpdate, error) {
	var update models.ContactUpdate
	var name, surename, email, phone, dob, description string
	var noDescription bool

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.StringVar(&name, "name", "", "first name")
	fs.StringVar(&surename, "surename", "", "last name")
	fs.StringVar(&email, "email", "", "email address")
	fs.StringVar(&phone, "phone", "", "phone number")
	fs.StringVar(&dob, "dob", "", "date of birth, YYYY-MM-DD")
	fs.StringVar(&description, "description", "", "description")
	fs.BoolVar(&noDescription, "no-description", false, "clear the description")
	if err := fs.Parse(args); err != nil {
		return update, err
	}

	if isFlagSet(fs, "name") {
		update.Name = models.Some(name)
	}
	if isFlagSet(fs, "surename") {
		update.Surename = models.Some(surename)
	}
	if isFlagSet(fs, "email") {
		update.Email = models.Some(email)
	}
	if isFlagSet(fs, "phone") {
		update.PhoneNumber = models.Some(phone)
	}
	if isFlagSet(fs, "dob") {
		date, err := models.ParseDate(dob)
		if err != nil {
			return update, fmt.Errorf("invalid -dob: %w", err)
		}
		update.DateOfBirth = models.Some(date)
	}

	switch {
	case noDescription && isFlagSet(fs, "description"):
		return update, errors.New("-description and -no-description are exclusive")
	case noDescription:
		update.Description = models.Null[string]()
	case isFlagSet(fs, "description"):
		update.Description = models.Some(description)
	}

	return update, nil
}

func runDelete(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	id, err := contactIDArg(args)
	if err != nil {
		return err
	}

	if err = a.DeleteContact(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "contact %d deleted\n", id)
	return nil
}

func runSearch(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	var filter models.ContactFilter
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.StringVar(&filter.Name, "name", "", "exact first name")
	fs.StringVar(&filter.Surename, "surename", "", "exact last name")
	fs.StringVar(&filter.Email, "email", "", "exact email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	contacts, err := a.SearchContacts(ctx, filter)
	if err != nil {
		return err
	}
	return printJSON(out, contacts)
}

func runBirthdays(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
	contacts, err := a.UpcomingBirthdays(ctx)
	if err != nil {
		return err
	}

	if len(contacts) == 0 {
		fmt.Fprintln(out, "no upcoming birthdays")
		return nil
	}
	for _, c := range contacts {
		fmt.Fprintf(out, "%s  %s %s\n", c.DateOfBirth.Format("01-02"), c.Name, c.Surename)
	}
	return nil
}

func runVersion(ctx context.Context, a adapter.ServerAdapter, _ []string, out io.Writer) error {
	version, err := a.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, version)
	return nil
}

func contactIDArg(args []string) (int64, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return 0, errors.New("contact id required")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid contact id %q", args[0])
	}
	return id, nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	var set []string
	fs.Visit(func(f *flag.Flag) { set = append(set, f.Name) })
	return slices.Contains(set, name)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/tui"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const usage = `usage: client [flags] <command> [args]

commands:
  register              create an account with -u/-p
  login                 check the credentials
  version               print the server version
  summary               print contact and category totals
  categories            list categories
  add-category <name>   create a category
  list [search]         print the first page of contacts
  browse                open the interactive contact browser
  delete <id>           delete a contact
  export <file>         write all contacts to a JSON file
  import <file>         create the contacts of an export file
`

// App runs one client command per process.
type App struct {
	adapter     adapter.ServerAdapter
	browser     Browser
	credentials config.ClientCredentials
	pageSize    int
	command     string
	args        []string
	out         io.Writer
	logger      *logger.Logger
}

// NewApp builds an [App] for the command held in cfg. browser may be nil, in
// which case the browse command fails.
func NewApp(serverAdapter adapter.ServerAdapter, browser Browser, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errNoAdapter
	}
	if cfg == nil {
		return nil, errNoConfig
	}

	return &App{
		adapter:     serverAdapter,
		browser:     browser,
		credentials: cfg.Credentials,
		pageSize:    cfg.PageSize,
		command:     strings.ToLower(strings.TrimSpace(cfg.Command)),
		args:        cfg.Args,
		out:         out,
		logger:      logger,
	}, nil
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	switch a.command {
	case "", "help":
		_, err := io.WriteString(a.out, usage)
		return err
	case "version":
		return a.version(ctx)
	case "register":
		return a.register(ctx)
	}

	if err := a.login(ctx); err != nil {
		return err
	}

	switch a.command {
	case "login":
		_, err := fmt.Fprintf(a.out, "logged in as %s\n", a.credentials.Login)
		return err
	case "summary":
		return a.summary(ctx)
	case "categories":
		return a.categories(ctx)
	case "add-category":
		return a.addCategory(ctx)
	case "list":
		return a.list(ctx)
	case "browse":
		if a.browser == nil {
			return errNoBrowser
		}
		return a.browser.Browse(ctx, a.pageSize)
	case "delete":
		return a.delete(ctx)
	case "export":
		return a.export(ctx)
	case "import":
		return a.importFile(ctx)
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, a.command)
}

func (a *App) user() (models.User, error) {
	if a.credentials.Login == "" || a.credentials.Password == "" {
		return models.User{}, ErrMissingCredentials
	}
	return models.User{Login: a.credentials.Login, Password: a.credentials.Password}, nil
}

func (a *App) login(ctx context.Context) error {
	if a.adapter.Token() != "" {
		return nil
	}

	user, err := a.user()
	if err != nil {
		return err
	}

	if err = a.adapter.Login(ctx, user); err != nil {
		a.logger.Debug().Err(err).Str("func", "App.login").Str("login", user.Login).Msg("login failed")
		return fmt.Errorf("login: %w", err)
	}

	return nil
}

func (a *App) register(ctx context.Context) error {
	user, err := a.user()
	if err != nil {
		return err
	}

	if err = a.adapter.Register(ctx, user); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "registered as %s\n", user.Login)
	return err
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "server version: %s\n", v)
	return err
}

func (a *App) summary(ctx context.Context) error {
	s, err := a.adapter.Summary(ctx)
	if err != nil {
		return fmt.Errorf("get summary: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "contacts: %d\ncategories: %d\n", s.TotalContacts, s.TotalCategories)
	return err
}

func (a *App) categories(ctx context.Context) error {
	categories, err := a.adapter.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if len(categories) == 0 {
		_, err = io.WriteString(a.out, "no categories\n")
		return err
	}

	_, err = fmt.Fprintln(a.out, tui.CategoryTable(categories))
	return err
}

func (a *App) addCategory(ctx context.Context) error {
	name := strings.TrimSpace(strings.Join(a.args, " "))
	if name == "" {
		return fmt.Errorf("%w: category name", ErrMissingArgument)
	}

	category, err := a.adapter.CreateCategory(ctx, models.CategoryInput{Name: name})
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "created category %d %q\n", category.ID, category.Name)
	return err
}

func (a *App) list(ctx context.Context) error {
	page, err := a.adapter.ListContacts(ctx, models.ListQuery{
		Search:   strings.Join(a.args, " "),
		Page:     models.DefaultPage,
		PageSize: a.pageSize,
	})
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	if len(page.Items) == 0 {
		_, err = io.WriteString(a.out, "no contacts\n")
		return err
	}

	_, err = fmt.Fprintf(a.out, "%s\nshowing %d of %d contacts\n",
		tui.ContactTable(page.Items, tui.NoSelection), len(page.Items), page.TotalCount)
	return err
}

func (a *App) delete(ctx context.Context) error {
	if len(a.args) == 0 {
		return fmt.Errorf("%w: contact id", ErrMissingArgument)
	}

	id, err := strconv.ParseInt(a.args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: contact id %q", ErrMissingArgument, a.args[0])
	}

	if err = a.adapter.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}

	_, err = fmt.Fprintf(a.out, "deleted contact %d\n", id)
	return err
}

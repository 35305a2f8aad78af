package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

const usage = `usage: task-keeper-client [-server URL] [-timeout D] [-token T] <command> [flags]

commands:
  register -username U -password P [-email E]
  login    -username U -password P
  logout
  list
  get      <id>
  create   -title T [-description D] [-priority N] [-due YYYY-MM-DD]
  update   <id> [-title T] [-description D] [-priority N] [-done=BOOL] [-due YYYY-MM-DD]
  delete   <id>
  version
  build-info
`

type command func(ctx context.Context, args []string) error

type App struct {
	server   adapter.ServerAdapter
	sessions store.LocalSessionStorage
	out      io.Writer
	commands map[string]command
	now      func() time.Time
	logger   *logger.Logger
}

func NewApp(server adapter.ServerAdapter, sessions store.LocalSessionStorage, out io.Writer, logger *logger.Logger) *App {
	app := &App{
		server:   server,
		sessions: sessions,
		out:      out,
		now:      time.Now,
		logger:   logger,
	}
	app.commands = map[string]command{
		"register": app.register,
		"login":    app.login,
		"logout":   app.logout,
		"list":     app.list,
		"get":      app.get,
		"create":   app.create,
		"update":   app.update,
		"delete":   app.delete,
		"version":  app.version,
	}

	return app
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = io.WriteString(a.out, usage)
		return ErrNoCommand
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		_, _ = io.WriteString(a.out, usage)
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		_, _ = io.WriteString(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	a.restoreSession()
	if err := cmd(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "account password")
	email := fs.String("email", "", "optional e-mail address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := models.RegisterRequest{Username: *username, Password: *password}
	if *email != "" {
		request.Email = email
	}

	resp, err := a.server.Register(ctx, request)
	if err != nil {
		return err
	}

	return a.saveSession(resp)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.server.Login(ctx, models.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return err
	}

	return a.saveSession(resp)
}

func (a *App) logout(_ context.Context, args []string) error {
	if err := a.flagSet("logout").Parse(args); err != nil {
		return err
	}

	if err := a.sessions.ClearSession(); err != nil {
		return err
	}
	a.server.SetToken("")

	_, _ = fmt.Fprintln(a.out, "logged out")
	return nil
}

// restoreSession installs the saved token unless one was given explicitly.
// Expired sessions are skipped.
func (a *App) restoreSession() {
	if a.server.Token() != "" {
		return
	}

	session, err := a.sessions.LoadSession()
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.logger.Warn().Err(err).Msg("error loading saved session")
		}
		return
	}

	if !session.ExpiresAt.IsZero() && !session.ExpiresAt.After(a.now()) {
		a.logger.Debug().Msg("saved session has expired")
		return
	}

	a.server.SetToken(session.Token)
}

func (a *App) saveSession(resp models.AuthResponse) error {
	if err := a.sessions.SaveSession(resp); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	a.printAuth(resp)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	if err := a.flagSet("list").Parse(args); err != nil {
		return err
	}

	tasks, err := a.server.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(a.out, "no tasks")
		return nil
	}

	a.printTasks(tasks...)
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	taskID, _, err := taskIDArg(args)
	if err != nil {
		return err
	}

	task, err := a.server.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	a.printTasks(task)
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := a.flagSet("create")
	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	priority := fs.Int("priority", models.DefaultTaskPriority, "task priority")
	due := fs.String("due", "", "due date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := models.CreateTaskRequest{Title: *title, Priority: priority}

	set := setFlags(fs)
	if set["description"] {
		request.Description = description
	}
	if set["due"] {
		dueDate, err := models.ParseDate(*due)
		if err != nil {
			return err
		}
		request.DueDate = &dueDate
	}

	task, err := a.server.CreateTask(ctx, request)
	if err != nil {
		return err
	}

	a.printTasks(task)
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	taskID, rest, err := taskIDArg(args)
	if err != nil {
		return err
	}

	fs := a.flagSet("update")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	priority := fs.Int("priority", 0, "new priority")
	done := fs.Bool("done", false, "completion state")
	due := fs.String("due", "", "new due date, YYYY-MM-DD")
	if err = fs.Parse(rest); err != nil {
		return err
	}

	// only flags given on the command line are sent
	var request models.UpdateTaskRequest
	set := setFlags(fs)
	if set["title"] {
		request.Title = title
	}
	if set["description"] {
		request.Description = description
	}
	if set["priority"] {
		request.Priority = priority
	}
	if set["done"] {
		request.IsCompleted = done
	}
	if set["due"] {
		dueDate, err := models.ParseDate(*due)
		if err != nil {
			return err
		}
		request.DueDate = &dueDate
	}

	task, err := a.server.UpdateTask(ctx, taskID, request)
	if err != nil {
		return err
	}

	a.printTasks(task)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	taskID, _, err := taskIDArg(args)
	if err != nil {
		return err
	}

	if err = a.server.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "task %d deleted\n", taskID)
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.server.Version(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "server version: %s\n", v)
	return nil
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) printAuth(resp models.AuthResponse) {
	_, _ = fmt.Fprintf(a.out, "logged in as %s\n", resp.Username)
	_, _ = fmt.Fprintf(a.out, "token: %s\n", resp.Token)
	_, _ = fmt.Fprintf(a.out, "expires at: %s\n", resp.ExpiresAt.Format(time.RFC3339))
}

func (a *App) printTasks(tasks ...models.Task) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tDUE\tTITLE")
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.String()
		}
		done := " "
		if t.IsCompleted {
			done = "x"
		}
		_, _ = fmt.Fprintf(tw, "%d\t[%s]\t%d\t%s\t%s\n", t.ID, done, t.Priority, due, t.Title)
	}
	_ = tw.Flush()
}

// taskIDArg takes the leading positional task id and returns the rest.
func taskIDArg(args []string) (int64, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return 0, nil, ErrMissingTaskID
	}

	taskID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || taskID <= 0 {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidTaskID, args[0])
	}

	return taskID, args[1:], nil
}

func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

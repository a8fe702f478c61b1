package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/config"
	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/session"
	"github.com/ja-he/memeplan/internal/snapshot"
	"github.com/ja-he/memeplan/internal/storage"
)

// NewCommand contains flags for the `new` command line command, for
// `go-flags` to parse command line args into.
type NewCommand struct {
	TemplateID int    `short:"t" long:"template" description:"the template to start from" value-name:"<ID>" required:"true"`
	Title      string `long:"title" description:"the draft's title (defaults to a name derived from the current time)" value-name:"<TITLE>"`
}

// Execute executes the new command.
// (This gets called by `go-flags` when `new` is provided on the command line)
func (command *NewCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	template, err := env.client.Template(ctx, command.TemplateID)
	if err != nil {
		return fmt.Errorf("could not get template %d (%w)", command.TemplateID, err)
	}

	s := env.newSession()
	s.Dispatch(editor.SetSelectedTemplate{Template: &template})

	title := command.Title
	if title == "" {
		title = s.DraftName()
	}
	in, err := draftInput(s, title, env.config.UserID)
	if err != nil {
		return err
	}
	summary, err := env.drafts.Create(ctx, in)
	if err != nil {
		return fmt.Errorf("could not create draft (%w)", err)
	}

	fmt.Fprintf(stdout, "%d\n", summary.ID)
	return nil
}

// ApplyCommand contains flags for the `apply` command line command, for
// `go-flags` to parse command line args into.
type ApplyCommand struct {
	Script string `short:"s" long:"script" description:"a YAML file listing the steps to apply" value-name:"<file>" required:"true"`
	Args   struct {
		Draft string `positional-arg-name:"<draft-id-or-file>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the apply command.
// (This gets called by `go-flags` when `apply` is provided on the command
// line)
func (command *ApplyCommand) Execute(args []string) error {
	scriptData, err := os.ReadFile(command.Script)
	if err != nil {
		return fmt.Errorf("could not read script (%w)", err)
	}
	steps, err := editor.ParseScript(scriptData)
	if err != nil {
		return fmt.Errorf("could not parse script '%s' (%w)", command.Script, err)
	}

	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	ref, snap, err := env.openDraftRef(ctx, command.Args.Draft)
	if err != nil {
		return err
	}
	s := env.newSession()
	s.Restore(snap)

	applied, err := applySteps(s, steps, env.config.LayerDefaults())
	if err != nil {
		return err
	}

	if err := ref.save(ctx, s); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "applied %d of %d steps to %s\n", applied, len(steps), ref)
	return nil
}

// applySteps resolves and dispatches each step in order, each against the
// state left by the previous one. A step that resolves but does not apply is
// skipped with a warning; one that does not resolve aborts.
func applySteps(s *session.Session, steps []editor.Step, defaults editor.LayerDefaults) (int, error) {
	applied := 0
	for i, step := range steps {
		a, err := step.Resolve(s.State(), defaults)
		if err != nil {
			return applied, fmt.Errorf("step %d (%w)", i, err)
		}
		if !s.Dispatch(a) {
			log.Warn().Int("step", i).Str("action", a.Explain()).Msg("step did not apply")
			continue
		}
		applied++
	}
	return applied, nil
}

// ShowCommand contains flags for the `show` command line command, for
// `go-flags` to parse command line args into.
type ShowCommand struct {
	Args struct {
		Draft string `positional-arg-name:"<draft-id-or-file>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the show command.
// (This gets called by `go-flags` when `show` is provided on the command line)
func (command *ShowCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	ref, snap, err := env.openDraftRef(ctx, command.Args.Draft)
	if err != nil {
		return err
	}
	s := env.newSession()
	for _, w := range s.Restore(snap) {
		fmt.Fprintf(stdout, "warning: %s\n", w)
	}

	printState(ref, s.State())
	return nil
}

func printState(ref *draftRef, state model.EditorState) {
	if ref.path == "" {
		fmt.Fprintf(stdout, "%s '%s'\n", ref, ref.draft.Title)
	} else {
		fmt.Fprintln(stdout, ref)
	}

	if state.SelectedTemplate != nil {
		fmt.Fprintf(stdout, "template: %d %s\n", state.SelectedTemplate.ID, state.SelectedTemplate.Name)
	} else {
		fmt.Fprintln(stdout, "template: none")
	}

	fmt.Fprintf(stdout, "layers: %d\n", len(state.ActiveLayers))
	for i := len(state.ActiveLayers) - 1; i >= 0; i-- {
		l := state.ActiveLayers[i]
		flags := ""
		if l.IsActive {
			flags += "*"
		}
		if !l.Properties.IsVisible() {
			flags += "H"
		}
		if l.Properties.Locked {
			flags += "L"
		}
		// stored content; U marks text rendered in upper case
		if l.DisplayContent() != l.Content {
			flags += "U"
		}
		fmt.Fprintf(stdout, "  %-4s %-10s %-8s at %s,%s  '%s'\n",
			flags, l.ID, l.Type, formatCoord(l.Properties.X), formatCoord(l.Properties.Y), l.Content)
	}

	if state.Filters.IsIdentity() {
		fmt.Fprintln(stdout, "filters: none")
	} else {
		fmt.Fprintf(stdout, "filters: %s\n", state.Filters.CSS())
	}
}

func formatCoord(v float64) string { return fmt.Sprintf("%.0f", v) }

// ExportCommand contains flags for the `export` command line command, for
// `go-flags` to parse command line args into.
type ExportCommand struct {
	Out  string `short:"o" long:"out" description:"the file to write (defaults to a name derived from the current time)" value-name:"<file>"`
	Args struct {
		Draft string `positional-arg-name:"<draft-id-or-file>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the export command.
// (This gets called by `go-flags` when `export` is provided on the command
// line)
func (command *ExportCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	_, snap, err := env.openDraftRef(ctx, command.Args.Draft)
	if err != nil {
		return err
	}
	s := env.newSession()
	s.Restore(snap)

	data, err := s.ExportJSON()
	if err != nil {
		return err
	}
	out := command.Out
	if out == "" {
		out = s.DraftName() + ".json"
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("could not write '%s' (%w)", out, err)
	}
	fmt.Fprintln(stdout, out)
	return nil
}

// ImportCommand contains flags for the `import` command line command, for
// `go-flags` to parse command line args into.
type ImportCommand struct {
	Title string `long:"title" description:"the draft's title (defaults to a name derived from the current time)" value-name:"<TITLE>"`
	Args  struct {
		File string `positional-arg-name:"<snapshot-file>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the import command.
// (This gets called by `go-flags` when `import` is provided on the command
// line)
func (command *ImportCommand) Execute(args []string) error {
	data, err := os.ReadFile(command.Args.File)
	if err != nil {
		return fmt.Errorf("could not read '%s' (%w)", command.Args.File, err)
	}
	snap, err := snapshot.ImportJSON(data)
	if err != nil {
		return fmt.Errorf("could not import '%s' (%w)", command.Args.File, err)
	}

	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	s := env.newSession()
	for _, w := range s.Restore(snap) {
		fmt.Fprintf(stdout, "warning: %s\n", w)
	}

	title := command.Title
	if title == "" {
		title = s.DraftName()
	}
	in, err := draftInput(s, title, env.config.UserID)
	if err != nil {
		return err
	}
	summary, err := env.drafts.Create(ctx, in)
	if err != nil {
		return fmt.Errorf("could not create draft (%w)", err)
	}
	fmt.Fprintf(stdout, "%d\n", summary.ID)
	return nil
}

// DraftsCommand groups the `drafts` subcommands.
type DraftsCommand struct {
	ListCommand   DraftsListCommand   `command:"list" description:"List stored drafts"`
	DeleteCommand DraftsDeleteCommand `command:"delete" description:"Delete a stored draft"`
}

// DraftsListCommand contains flags for the `drafts list` command line
// command, for `go-flags` to parse command line args into.
type DraftsListCommand struct {
	Page    int  `long:"page" description:"the page to list" value-name:"<N>"`
	PerPage int  `long:"per-page" description:"the number of drafts per page" value-name:"<N>"`
	All     bool `short:"a" long:"all" description:"list drafts of all users, not only the configured one"`
}

// Execute executes the drafts list command.
func (command *DraftsListCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	opts := storage.ListOptions{Page: command.Page, PerPage: command.PerPage}
	if !command.All {
		opts.UserID = env.config.UserID
	}
	page, err := env.drafts.List(ctx, opts)
	if err != nil {
		return fmt.Errorf("could not list drafts (%w)", err)
	}

	for _, d := range page.Items {
		fmt.Fprintf(stdout, "%6d  %-32s  %s\n", d.ID, d.Title, d.UpdatedAt)
	}
	printPageFooter(page.Page, page.PerPage, page.Total, len(page.Items))
	return nil
}

// DraftsDeleteCommand contains flags for the `drafts delete` command line
// command, for `go-flags` to parse command line args into.
type DraftsDeleteCommand struct {
	Args struct {
		ID int `positional-arg-name:"<draft-id>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the drafts delete command.
func (command *DraftsDeleteCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	if err := env.drafts.Delete(ctx, command.Args.ID); err != nil {
		return fmt.Errorf("could not delete draft %d (%w)", command.Args.ID, err)
	}
	fmt.Fprintf(stdout, "deleted draft %d\n", command.Args.ID)
	return nil
}

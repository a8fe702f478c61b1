package cli

import (
	"fmt"
	"net/url"

	"github.com/ja-he/memeplan/internal/api"
	"github.com/ja-he/memeplan/internal/config"
	"github.com/ja-he/memeplan/internal/model"
)

// PublishCommand contains flags for the `publish` command line command, for
// `go-flags` to parse command line args into.
type PublishCommand struct {
	Title    string `long:"title" description:"the meme's title (defaults to the draft's title)" value-name:"<TITLE>"`
	ImageURL string `long:"image" description:"the rendered meme's URL (defaults to the template image)" value-name:"<URL>"`

	Args struct {
		Draft string `positional-arg-name:"<draft-id-or-file>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the publish command.
// (This gets called by `go-flags` when `publish` is provided on the command
// line)
func (command *PublishCommand) Execute(args []string) error {
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

	meme, err := newMeme(s.State(), command.Title, command.ImageURL)
	if err != nil {
		return err
	}
	if meme.Title == "" {
		meme.Title = ref.draft.Title
	}
	if meme.Title == "" {
		meme.Title = s.DraftName()
	}
	meme.UserID = env.config.UserID

	published, err := env.client.CreateMeme(ctx, meme)
	if err != nil {
		return fmt.Errorf("could not publish %s (%w)", ref, err)
	}
	fmt.Fprintf(stdout, "published %s as meme %d\n", ref, published.ID)
	return nil
}

// newMeme builds the meme to publish from the state's visible layers.
// The image defaults to the template's, if that is an absolute URL.
func newMeme(state model.EditorState, title, imageURL string) (api.NewMeme, error) {
	meme := api.NewMeme{Title: title, ImageURL: imageURL, Layers: []model.MemeLayer{}}

	if state.SelectedTemplate != nil {
		meme.TemplateID = model.Pointer(state.SelectedTemplate.ID)
		if meme.ImageURL == "" {
			if u, err := url.Parse(state.SelectedTemplate.ImageURL); err == nil && u.IsAbs() {
				meme.ImageURL = u.String()
			}
		}
	}

	for _, l := range state.ActiveLayers {
		if !l.Properties.IsVisible() {
			continue
		}
		m, err := l.MemeLayer()
		if err != nil {
			return api.NewMeme{}, fmt.Errorf("could not convert layer '%s' (%w)", l.ID, err)
		}
		meme.Layers = append(meme.Layers, m)
	}
	if len(meme.Layers) == 0 {
		return api.NewMeme{}, fmt.Errorf("nothing to publish, no visible layers")
	}
	return meme, nil
}

// MemesCommand groups the `memes` subcommands.
type MemesCommand struct {
	ListCommand MemesListCommand `command:"list" description:"List published memes"`
	ShowCommand MemesShowCommand `command:"show" description:"Show a published meme with its layers"`
}

// MemesListCommand contains flags for the `memes list` command line command,
// for `go-flags` to parse command line args into.
type MemesListCommand struct {
	Page    int  `long:"page" description:"the page to list" value-name:"<N>"`
	PerPage int  `long:"per-page" description:"the number of memes per page" value-name:"<N>"`
	All     bool `short:"a" long:"all" description:"list memes of all users, not only the configured one"`
}

// Execute executes the memes list command.
func (command *MemesListCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	q := api.MemeQuery{PageOptions: api.PageOptions{Page: command.Page, PerPage: command.PerPage}}
	if !command.All {
		q.UserID = env.config.UserID
	}
	page, err := env.client.Memes(ctx, q)
	if err != nil {
		return fmt.Errorf("could not list memes (%w)", err)
	}

	for _, m := range page.Items {
		fmt.Fprintf(stdout, "%6d  %-32s  %s\n", m.ID, m.Title, m.CreatedAt)
	}
	printPageFooter(page.Page, page.PerPage, page.Total, len(page.Items))
	return nil
}

// MemesShowCommand contains flags for the `memes show` command line command,
// for `go-flags` to parse command line args into.
type MemesShowCommand struct {
	Args struct {
		ID int `positional-arg-name:"<meme-id>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the memes show command.
func (command *MemesShowCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	m, err := env.client.Meme(ctx, command.Args.ID)
	if err != nil {
		return fmt.Errorf("could not get meme %d (%w)", command.Args.ID, err)
	}

	fmt.Fprintf(stdout, "meme %d '%s'\n", m.ID, m.Title)
	if m.TemplateID != nil {
		fmt.Fprintf(stdout, "template: %d\n", *m.TemplateID)
	} else {
		fmt.Fprintln(stdout, "template: none")
	}
	if m.ImageURL != "" {
		fmt.Fprintf(stdout, "image: %s\n", m.ImageURL)
	}
	fmt.Fprintf(stdout, "layers: %d\n", len(m.Layers))
	for _, l := range m.Layers {
		fmt.Fprintf(stdout, "  z%-3d %-8s '%s'\n", l.ZIndex, l.LayerType, l.Content)
	}
	return nil
}

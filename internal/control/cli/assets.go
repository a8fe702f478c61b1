package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/ja-he/memeplan/internal/api"
	"github.com/ja-he/memeplan/internal/config"
	"github.com/ja-he/memeplan/internal/model"
)

// commandContext is the context for a single command run, canceled on
// interrupt.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// TemplatesCommand contains flags for the `templates` command line command,
// for `go-flags` to parse command line args into.
type TemplatesCommand struct {
	CategoryID int    `short:"c" long:"category" description:"only list templates of this category" value-name:"<ID>"`
	Search     string `short:"s" long:"search" description:"only list templates whose name matches" value-name:"<TEXT>"`
	Page       int    `long:"page" description:"the page to list" value-name:"<N>"`
	PerPage    int    `long:"per-page" description:"the number of templates per page" value-name:"<N>"`
}

// Execute executes the templates command.
// (This gets called by `go-flags` when `templates` is provided on the command
// line)
func (command *TemplatesCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	page, err := env.client.Templates(ctx, api.TemplateQuery{
		PageOptions: api.PageOptions{Page: command.Page, PerPage: command.PerPage},
		CategoryID:  command.CategoryID,
		Search:      command.Search,
	})
	if err != nil {
		return fmt.Errorf("could not list templates (%w)", err)
	}

	for _, t := range page.Items {
		category := ""
		if t.Category != nil {
			category = t.Category.Name
		}
		fmt.Fprintf(stdout, "%6d  %-32s  %s\n", t.ID, t.Name, category)
	}
	printPageFooter(page.Page, page.PerPage, page.Total, len(page.Items))
	return nil
}

func printPageFooter(page, perPage, total, count int) {
	if total == 0 && count == 0 {
		fmt.Fprintln(stdout, "(none)")
		return
	}
	pages := 1
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	fmt.Fprintf(stdout, "page %d of %d (%d total)\n", page, max(pages, 1), total)
}

// TemplateCommand contains flags for the `template` command line command, for
// `go-flags` to parse command line args into.
type TemplateCommand struct {
	Args struct {
		ID int `positional-arg-name:"<template-id>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the template command.
// (This gets called by `go-flags` when `template` is provided on the command
// line)
func (command *TemplateCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	t, err := env.client.Template(ctx, command.Args.ID)
	if err != nil {
		return fmt.Errorf("could not get template %d (%w)", command.Args.ID, err)
	}

	fmt.Fprintf(stdout, "%d %s\n", t.ID, t.Name)
	fmt.Fprintf(stdout, "  image: %s\n", t.ImageURL)
	if t.Category != nil {
		fmt.Fprintf(stdout, "  category: %s\n", t.Category.Name)
	}
	if len(t.Fields) == 0 {
		fmt.Fprintln(stdout, "  no fields")
		return nil
	}
	fmt.Fprintln(stdout, "  fields:")
	for _, f := range t.Fields {
		fmt.Fprintf(stdout, "    %-16s at %.0f%%,%.0f%% size %.0f%%x%.0f%%\n", f.Name, f.XPos, f.YPos, f.Width, f.Height)
	}
	return nil
}

// CategoriesCommand contains flags for the `categories` command line command,
// for `go-flags` to parse command line args into.
type CategoriesCommand struct{}

// Execute executes the categories command.
// (This gets called by `go-flags` when `categories` is provided on the
// command line)
func (command *CategoriesCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	categories, err := env.client.AssetCategories(ctx)
	if err != nil {
		return fmt.Errorf("could not list categories (%w)", err)
	}
	for _, group := range []struct {
		name       string
		categories []model.CategoryRef
	}{
		{"templates", categories.Templates},
		{"stickers", categories.Stickers},
	} {
		fmt.Fprintf(stdout, "%s:\n", group.name)
		for _, c := range group.categories {
			fmt.Fprintf(stdout, "%6d  %s\n", c.ID, c.Name)
		}
		if len(group.categories) == 0 {
			fmt.Fprintln(stdout, "  (none)")
		}
	}
	return nil
}

// StickersCommand contains flags for the `stickers` command line command, for
// `go-flags` to parse command line args into.
type StickersCommand struct {
	CategoryID int `short:"c" long:"category" description:"only list stickers of this category" value-name:"<ID>"`
}

// Execute executes the stickers command.
// (This gets called by `go-flags` when `stickers` is provided on the command
// line)
func (command *StickersCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	stickers, err := env.client.Stickers(ctx, command.CategoryID)
	if err != nil {
		return fmt.Errorf("could not list stickers (%w)", err)
	}
	for _, s := range stickers {
		fmt.Fprintf(stdout, "%6d  %-32s  %s\n", s.ID, s.Name, s.ImageURL)
	}
	if len(stickers) == 0 {
		fmt.Fprintln(stdout, "(none)")
	}
	return nil
}

// FontsCommand contains flags for the `fonts` command line command, for
// `go-flags` to parse command line args into.
type FontsCommand struct{}

// Execute executes the fonts command.
// (This gets called by `go-flags` when `fonts` is provided on the command
// line)
func (command *FontsCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	fonts, err := env.client.Fonts(ctx)
	if err != nil {
		return fmt.Errorf("could not list fonts (%w)", err)
	}
	for _, f := range fonts {
		fmt.Fprintf(stdout, "%6d  %-24s  %s\n", f.ID, f.Name, f.FontFamily)
	}
	if len(fonts) == 0 {
		fmt.Fprintln(stdout, "(none)")
	}
	return nil
}

// TrendingCommand contains flags for the `trending` command line command, for
// `go-flags` to parse command line args into.
type TrendingCommand struct{}

// Execute executes the trending command.
// (This gets called by `go-flags` when `trending` is provided on the command
// line)
func (command *TrendingCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	items, err := env.client.Trending(ctx)
	if err != nil {
		return fmt.Errorf("could not list trending memes (%w)", err)
	}
	for _, item := range items {
		fmt.Fprintln(stdout, trendingLine(item))
	}
	if len(items) == 0 {
		fmt.Fprintln(stdout, "(none)")
	}
	return nil
}

func trendingLine(item model.TrendingItem) string {
	parts := []string{item.Title, "(" + item.Source + ")"}
	if item.Score != nil {
		parts = append(parts, fmt.Sprintf("score %.0f", *item.Score))
	}
	parts = append(parts, item.ImageURL)
	return strings.Join(parts, " ")
}

// GifsCommand contains flags for the `gifs` command line command, for
// `go-flags` to parse command line args into.
type GifsCommand struct {
	Query string `short:"q" long:"query" description:"what to search for" value-name:"<TEXT>" required:"true"`
	Limit int    `short:"n" long:"limit" description:"the maximum number of results" value-name:"<N>"`
}

// Execute executes the gifs command.
// (This gets called by `go-flags` when `gifs` is provided on the command
// line)
func (command *GifsCommand) Execute(args []string) error {
	env, err := newEnvironment(config.Dark)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	gifs, err := env.client.SearchGifs(ctx, command.Query, command.Limit)
	if err != nil {
		return fmt.Errorf("could not search gifs (%w)", err)
	}
	for _, g := range gifs {
		fmt.Fprintf(stdout, "%-24s  %-40s  %s\n", g.ID, g.Title, g.Images.FixedHeight.URL)
	}
	if len(gifs) == 0 {
		fmt.Fprintln(stdout, "(none)")
	}
	return nil
}

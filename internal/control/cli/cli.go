// Package cli provides the command-line interface for memeplan.
package cli

// CommandLineOpts are the command line options and subcommands, for
// `go-flags` to parse command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TemplatesCommand  TemplatesCommand  `command:"templates" description:"List or search meme templates"`
	TemplateCommand   TemplateCommand   `command:"template" description:"Show a template with its fields"`
	CategoriesCommand CategoriesCommand `command:"categories" description:"List template and sticker categories"`
	StickersCommand   StickersCommand   `command:"stickers" description:"List stickers"`
	FontsCommand      FontsCommand      `command:"fonts" description:"List fonts"`
	TrendingCommand   TrendingCommand   `command:"trending" description:"List trending memes"`
	GifsCommand       GifsCommand       `command:"gifs" description:"Search GIFs"`

	NewCommand    NewCommand    `command:"new" description:"Create a draft from a template"`
	ApplyCommand  ApplyCommand  `command:"apply" description:"Apply a script of editing steps to a draft"`
	ShowCommand   ShowCommand   `command:"show" description:"Summarize a draft's layers and filters"`
	ExportCommand ExportCommand `command:"export" description:"Export a draft as a snapshot document"`
	ImportCommand ImportCommand `command:"import" description:"Store a snapshot document as a draft"`
	DraftsCommand DraftsCommand `command:"drafts" description:"List or delete stored drafts"`

	PublishCommand PublishCommand `command:"publish" description:"Publish a draft as a meme"`
	MemesCommand   MemesCommand   `command:"memes" description:"List or show published memes"`

	EditCommand    EditCommand    `command:"edit" description:"Edit a draft in the terminal UI"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts

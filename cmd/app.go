// Package cmd implements the CLI application to report on spending workbooks.
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/etnz/spendings"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&chartsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&periodsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// conf holds the SPD_* environment configuration, loaded once at startup.
var conf = loadConf()

func loadConf() *koanf.Koanf {
	k := koanf.New(".")
	// SPD_HEADER_PERIOD becomes the "header_period" key, and so on.
	err := k.Load(env.Provider("SPD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SPD_"))
	}), nil)
	if err != nil {
		log.Printf("warning, ignoring SPD environment: %v", err)
	}
	return k
}

// envSchema returns the sheet schema with any SPD_* override applied.
func envSchema() spendings.Schema {
	s := spendings.DefaultSchema()
	err := conf.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true})
	if err != nil {
		log.Printf("warning, ignoring SPD environment: %v", err)
		return spendings.DefaultSchema()
	}
	return s
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := conf.String(key); v != "" {
		return v
	}
	return fallback
}

// readOptions builds the pipeline options shared by the report commands:
// flags first, then the SPD_* environment, then the reference defaults.
func readOptions(group string, window int) (spendings.Options, error) {
	opts := spendings.DefaultOptions()
	g, err := spendings.ParseGrouping(group)
	if err != nil {
		return opts, err
	}
	opts.Grouping = g
	opts.Window = window
	opts.Currency = envOr("currency", opts.Currency)
	opts.Schema = envSchema()
	return opts, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the fancy renderer cannot be used.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

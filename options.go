package marktree

import "github.com/tsawler/marktree/export"

// ExtractOptions holds configuration for parsing and export.
type ExtractOptions struct {
	// Parsing
	extensions bool
	tabWidth   int // 0 leaves tabs alone

	// Export
	paddedTables bool
	fullPage     bool
	title        string
	indent       string
}

// defaultOptions returns the default options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		extensions: true,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}

// exportOptions translates the options into export options.
func (o ExtractOptions) exportOptions() []export.Option {
	var opts []export.Option
	if !o.extensions {
		opts = append(opts, export.WithoutExtensions())
	}
	if o.paddedTables {
		opts = append(opts, export.WithPaddedTables())
	}
	if o.fullPage {
		opts = append(opts, export.WithFragment(false), export.WithTitle(o.title))
	}
	if o.indent != "" {
		opts = append(opts, export.WithIndent(o.indent))
	}
	return opts
}

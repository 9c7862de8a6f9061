package export

// config holds the settings shared by all exporters
type config struct {
	extensions   bool
	paddedTables bool
	fragment     bool
	title        string
	indent       string
}

func newConfig(opts []Option) config {
	cfg := config{
		extensions: true,
		fragment:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures an export
type Option func(*config)

// WithoutExtensions leaves out the extended syntax: code block filenames,
// image size and css attributes, and alignment wrappers. The content of an
// alignment block is still written.
func WithoutExtensions() Option {
	return func(c *config) {
		c.extensions = false
	}
}

// WithPaddedTables pads markdown table columns to equal display width
func WithPaddedTables() Option {
	return func(c *config) {
		c.paddedTables = true
	}
}

// WithFragment controls whether HTML output is a bare fragment (the
// default) or a complete page with html, head and body elements.
func WithFragment(fragment bool) Option {
	return func(c *config) {
		c.fragment = fragment
	}
}

// WithTitle sets the title of a complete HTML page. Without it the text of
// the first heading is used.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithIndent pretty-prints JSON output with the given indent string
func WithIndent(indent string) Option {
	return func(c *config) {
		c.indent = indent
	}
}

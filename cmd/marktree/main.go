// Command marktree parses markdown files and writes them as canonical
// markdown, HTML, JSON, a debug tree, a heading outline or retrieval chunks
// as JSON Lines.
//
// Usage:
//
//	marktree [flags] [file]
//
// Without a file argument the input is read from stdin. With -i, lines typed
// at the prompt are parsed one at a time.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/tsawler/marktree"
	"github.com/tsawler/marktree/export"
	"github.com/tsawler/marktree/rag"
)

// tracer traces with key 'marktree.cli'
func tracer() tracing.Trace {
	return tracing.Select("marktree.cli")
}

// traceKeys are the tracers whose level the -trace flag sets
var traceKeys = []string{
	"marktree",
	"marktree.cli",
	"marktree.parser",
	"marktree.inline",
	"marktree.tables",
}

// options collects the command line flags
type options struct {
	format      string
	output      string
	stats       bool
	interactive bool
	noExt       bool
	padded      bool
	page        bool
	title       string
	tabs        int
	indent      string
}

func main() {
	initDisplay()

	// command line flags
	var opts options
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.StringVar(&opts.format, "format", "markdown", "Output format [markdown|html|json|tree|outline|chunks]")
	flag.StringVar(&opts.output, "o", "", "Write output to this file instead of stdout")
	flag.BoolVar(&opts.stats, "stats", false, "Print document statistics instead of the document")
	flag.BoolVar(&opts.interactive, "i", false, "Parse lines typed at a prompt")
	flag.BoolVar(&opts.noExt, "no-ext", false, "Disable alignment tags, code filenames and image attributes")
	flag.BoolVar(&opts.padded, "padded", false, "Pad markdown table columns")
	flag.BoolVar(&opts.page, "page", false, "Write a complete HTML page")
	flag.StringVar(&opts.title, "title", "", "Title of the HTML page")
	flag.IntVar(&opts.tabs, "tabs", 0, "Expand leading tabs to this many spaces")
	flag.StringVar(&opts.indent, "indent", "", "Indent string for JSON output")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		log.Fatalln(errors.Wrap(err, "could not configure tracing"))
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	}
	tracer().Infof("Trace level is %s", *tlevel)

	if opts.interactive {
		if err := repl(opts); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}

	var out io.Writer = os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			log.Fatalln(errors.Wrap(err, "could not create output file"))
		}
		defer f.Close()
		out = f
		pp.ColoringEnabled = false
	}

	if err := run(opts, flag.Args(), os.Stdin, out); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// run parses the input named by args, or stdin, and writes the result
func run(opts options, args []string, stdin io.Reader, out io.Writer) error {
	var ext *marktree.Extractor
	switch len(args) {
	case 0:
		ext = marktree.FromReader(stdin)
	case 1:
		ext = marktree.Open(args[0])
	default:
		return errors.Errorf("expected at most one input file, got %d", len(args))
	}
	ext = configure(ext, opts)

	if opts.stats {
		stats, err := ext.Stats()
		if err != nil {
			return errors.Wrap(err, "could not parse input")
		}
		table, err := statsTable(stats)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, table)
		return err
	}

	return render(ext, opts.format, out)
}

// render writes the parsed input in the named format. Besides the export
// formats it knows "tree", a dump of the document structure, "outline", the
// heading tree, and "chunks", heading sections as JSON Lines.
func render(ext *marktree.Extractor, formatName string, out io.Writer) error {
	switch formatName {
	case "tree":
		doc, warnings, err := ext.Document()
		if err != nil {
			return errors.Wrap(err, "could not parse input")
		}
		reportWarnings(warnings)
		_, err = fmt.Fprintln(out, debugTree(doc))
		return err
	case "outline":
		outline, err := ext.Outline()
		if err != nil {
			return errors.Wrap(err, "could not parse input")
		}
		tree, err := outlineTree(outline)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, tree)
		return err
	case "chunks":
		chunks, warnings, err := ext.Chunks()
		if err != nil {
			return errors.Wrap(err, "could not parse input")
		}
		reportWarnings(warnings)
		tracer().Debugf("writing %d chunks", chunks.Len())
		return chunks.Export(out, rag.ExportFormatJSONL)
	}

	f, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	warnings, err := ext.Export(out, f)
	if err != nil {
		return errors.Wrapf(err, "could not write %s", f)
	}
	reportWarnings(warnings)
	_, err = fmt.Fprintln(out)
	return err
}

func configure(ext *marktree.Extractor, opts options) *marktree.Extractor {
	if opts.noExt {
		ext = ext.WithoutExtensions()
	}
	if opts.padded {
		ext = ext.PaddedTables()
	}
	if opts.page {
		ext = ext.FullPage(opts.title)
	}
	if opts.tabs > 0 {
		ext = ext.ExpandTabs(opts.tabs)
	}
	if opts.indent != "" {
		ext = ext.Indent(opts.indent)
	}
	return ext
}

func reportWarnings(warnings []marktree.Warning) {
	for _, w := range warnings {
		pterm.Warning.Println(w.String())
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

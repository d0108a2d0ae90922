/*
rxrail is a console utility rendering a regular expression as a railroad
syntax diagram or a natural-language description.

Usage is

	rxrail [flags] <regex>
	rxrail [flags] -f <file-name> -l <line> -c <col>
	rxrail [flags] -f <file-name> -c <col>  (source line read from stdin)

In the last two forms the regex is extracted from the string literal around
column <col> of the source line, using the string format of the language
derived from <file-name>'s extension.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rxrail/rxrail/extract"
	"github.com/rxrail/rxrail/parser"
	"github.com/rxrail/rxrail/railroad"
	"github.com/rxrail/rxrail/text"
)

var headerColor = color.New(color.FgCyan, color.Bold)

// envConfig holds environment variable overrides.
type envConfig struct {
	LogLevel  string `envconfig:"RXRAIL_LOG_LEVEL"`
	LogOutput string `envconfig:"RXRAIL_LOG_OUTPUT"`
	NoColor   bool   `envconfig:"RXRAIL_NO_COLOR"`
}

// rootCommand keeps all fields needed for the main rxrail command.
type rootCommand struct {
	cmd    *cobra.Command
	logger *logrus.Logger

	textMode    bool
	fileName    string
	lineNum     int
	col         int
	formatsFile string
	noColor     bool
	verbose     bool
	logOutput   string
}

func newRootCommand() *rootCommand {
	c := &rootCommand{logger: logrus.New()}
	c.cmd = &cobra.Command{
		Use:           "rxrail [flags] <regex>",
		Short:         "render a regular expression as a railroad diagram",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       c.setup,
		RunE:          c.run,
	}
	c.cmd.Flags().AddFlagSet(c.flagSet())
	return c
}

func (c *rootCommand) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&c.textMode, "text", "t", false, "render a plain-text description instead of a diagram")
	flags.StringVarP(&c.fileName, "file", "f", "", "source file name, enables extraction from a source line")
	flags.IntVarP(&c.lineNum, "line", "l", 0, "1-based source line to read from the file; 0 reads one line from stdin")
	flags.IntVarP(&c.col, "col", "c", 0, "0-based cursor column in the source line")
	flags.StringVar(&c.formatsFile, "formats", "", "YAML file adding per-language string formats")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&c.logOutput, "log-output", "", "write the debug log to a file")
	return flags
}

// setup applies environment overrides and configures logging and color.
func (c *rootCommand) setup(*cobra.Command, []string) error {
	var env envConfig
	if e := envconfig.Process("", &env); e != nil {
		return e
	}

	c.logger.SetOutput(os.Stderr)
	c.logger.SetLevel(logrus.WarnLevel)
	if c.verbose {
		c.logger.SetLevel(logrus.DebugLevel)
	}
	if env.LogLevel != "" {
		level, e := logrus.ParseLevel(env.LogLevel)
		if e != nil {
			return e
		}
		c.logger.SetLevel(level)
	}
	if c.logOutput == "" {
		c.logOutput = env.LogOutput
	}
	if c.logOutput != "" {
		f, e := os.OpenFile(c.logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if e != nil {
			return e
		}
		c.logger.SetOutput(f)
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if c.noColor || env.NoColor || !tty {
		color.NoColor = true
	}
	return nil
}

func (c *rootCommand) run(cmd *cobra.Command, args []string) error {
	regexText, escape, e := c.regexText(args)
	if e != nil {
		return e
	}
	c.logger.WithField("regex", regexText).Debug("parsing")

	tree, e := parser.NewWithOptions(regexText, parser.Options{Escape: escape}).Parse()
	if e != nil {
		return e
	}

	stdout := colorable.NewColorableStdout()
	if c.textMode {
		desc, e := text.Render(tree)
		if e != nil {
			return e
		}
		for i, line := range desc.Lines {
			fmt.Fprintln(stdout, colorize(line, i, desc.Highlights))
		}
		return nil
	}

	renderer := railroad.NewWithLogger(c.logger)
	root, e := renderer.Generate(tree)
	if e != nil {
		return e
	}
	diagram, e := renderer.Render(root)
	if e != nil {
		return e
	}
	for _, row := range diagram.Rows {
		fmt.Fprintln(stdout, row)
	}
	return nil
}

// regexText resolves the regex to render: either the positional argument,
// or the string literal under the cursor of a source line read from stdin.
func (c *rootCommand) regexText(args []string) (string, rune, error) {
	if c.fileName == "" {
		if len(args) == 0 {
			return "", 0, fmt.Errorf("a regex argument is required unless --file is given")
		}
		return args[0], parser.DefaultEscape, nil
	}

	formats := extract.DefaultFormats()
	if c.formatsFile != "" {
		f, e := os.Open(c.formatsFile)
		if e != nil {
			return "", 0, e
		}
		defer f.Close()
		formats, e = extract.LoadFormats(f)
		if e != nil {
			return "", 0, e
		}
	}

	lang := extract.LanguageForFile(c.fileName)
	format, e := formats.For(lang)
	if e != nil {
		return "", 0, e
	}

	line, e := c.sourceLine()
	if e != nil {
		return "", 0, e
	}

	content, raw, e := format.Extract(line, c.col)
	if e != nil {
		return "", 0, e
	}
	c.logger.WithFields(logrus.Fields{"language": lang, "raw": raw}).Debug("extracted string literal")
	return content, format.EscapeChar(), nil
}

// sourceLine reads the cursor's line: line --line of the named file, or a
// single line from stdin when --line is not given.
func (c *rootCommand) sourceLine() (string, error) {
	in := os.Stdin
	if c.lineNum > 0 {
		f, e := os.Open(c.fileName)
		if e != nil {
			return "", e
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		if c.lineNum <= 0 || n == c.lineNum {
			return scanner.Text(), nil
		}
	}
	if e := scanner.Err(); e != nil {
		return "", e
	}
	if c.lineNum > 0 {
		return "", fmt.Errorf("%s has no line %d", c.fileName, c.lineNum)
	}
	return "", fmt.Errorf("no source line on stdin")
}

// colorize highlights the header spans of line i.
func colorize(line string, i int, highlights []text.Highlight) string {
	for _, h := range highlights {
		if h.Line != i || h.Start != 0 || h.End > len(line) {
			continue
		}
		return headerColor.Sprint(line[:h.End]) + line[h.End:]
	}
	return line
}

func main() {
	if e := newRootCommand().cmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(1)
	}
}

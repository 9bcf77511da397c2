package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/revelaction/udproj/config"
	"github.com/revelaction/udproj/render"
)

var errNoTreebankPath = errors.New("Treebank path must be specified via -p, UDPROJ_TREEBANK_PATH or treebank_path in " + config.DefaultFile)

// Option structs for subcommands that have flags
type ProjectOptions struct {
	Source    string
	Target    string
	Alignment string
	Out       string
	Title     string
	Config    string

	// config keys of the flags set on the command line
	Overrides map[string]interface{}
}

type LsOptions struct {
	TreebankPath string
}

type SentenceOptions struct {
	Format       string
	NoColor      bool
	TreebankPath string
}

type StatOptions struct {
	TreebankPath string
}

type ImportOptions struct {
	From string
	To   string
}

type ExportOptions struct {
	From string
	To   string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// configFlags maps flag names of the project command to config keys.
var configFlags = map[string]string{
	"workers":        "workers",
	"skip-malformed": "skip_malformed",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"progress":       "progress",
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("udproj", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseProjectArgs(args []string, ui UI) (ProjectOptions, error) {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ProjectOptions
	fs.StringVar(&opts.Source, "source", "", "Source language CoNLL-U file")
	fs.StringVar(&opts.Source, "s", "", "alias for -source")
	fs.StringVar(&opts.Target, "target", "", "Target language text file, one whitespace tokenized sentence per line")
	fs.StringVar(&opts.Target, "t", "", "alias for -target")
	fs.StringVar(&opts.Alignment, "align", "", "Alignment file, one line of <source>-<target> pairs per sentence")
	fs.StringVar(&opts.Alignment, "a", "", "alias for -align")
	fs.StringVar(&opts.Out, "out", "-", "Output: '-' for stdout, a .conllu file, a directory or a .db SQLite file")
	fs.StringVar(&opts.Out, "o", "-", "alias for -out")
	fs.StringVar(&opts.Title, "title", "", "Treebank title (default: target file name)")
	fs.StringVar(&opts.Config, "config", "", "Config file (default: ./udproj.yaml if present)")
	fs.StringVar(&opts.Config, "c", "", "alias for -config")

	// only used to register the flags, values are read back in Visit
	fs.Int("workers", 0, "Number of sentence pairs projected concurrently")
	fs.Bool("skip-malformed", false, "Project malformed alignment lines as unaligned instead of failing")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.String("log-format", "", "Log format (text, json)")
	fs.Bool("progress", true, "Show a progress bar when writing to a file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s project [options] -source <conllu> -target <txt> -align <txt>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Project the UD annotation of the source sentences onto the aligned target sentences.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, err
	}

	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("project command accepts no arguments")
	}

	if opts.Source == "" || opts.Target == "" || opts.Alignment == "" {
		return opts, errors.New("-source, -target and -align are required")
	}

	opts.Overrides = map[string]interface{}{}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := configFlags[f.Name]; ok {
			opts.Overrides[key] = f.Value.String()
		}
	})

	return opts, nil
}

func parseLsArgs(args []string, ui UI) (LsOptions, error) {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LsOptions
	fs.StringVar(&opts.TreebankPath, "treebank-path", "", "Path to treebank directory or SQLite file (default: treebank_path config key)")
	fs.StringVar(&opts.TreebankPath, "p", "", "alias for -treebank-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s ls [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the treebanks of a repository. Treebank IDs start at 1 for both directories and SQLite files.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, err
	}

	path, err := resolveTreebankPath(opts.TreebankPath)
	if err != nil {
		return opts, err
	}
	if path == "" {
		return opts, errNoTreebankPath
	}
	opts.TreebankPath = path

	return opts, nil
}

func parseSentenceArgs(args []string, ui UI) (SentenceOptions, string, int, error) {
	fs := flag.NewFlagSet("sentence", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SentenceOptions
	opts.Format = render.DefaultFormat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Show the sentence as aligned text rows (text) or JSON (json)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show the sentence without formatting (color)")

	fs.StringVar(&opts.TreebankPath, "treebank-path", "", "Path to treebank directory or SQLite file (default: treebank_path config key)")
	fs.StringVar(&opts.TreebankPath, "p", "", "alias for -treebank-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s sentence [options] <source> <sentenceId>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show a specific sentence details. <source> can be a CoNLL-U file or a treebank ID.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", 0, err
		}
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", 0, err
	}

	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", 0, errors.New("sentence command needs exactly two arguments: <source> <sentenceId>")
	}

	source := fs.Arg(0)
	sentId, sentErr := strconv.Atoi(fs.Arg(1))
	if sentErr != nil {
		return opts, "", 0, fmt.Errorf("invalid sentenceId: %v", sentErr)
	}

	path, err := resolveTreebankPath(opts.TreebankPath)
	if err != nil {
		return opts, "", 0, err
	}
	opts.TreebankPath = path

	if err := validateSource(source, opts.TreebankPath); err != nil {
		return opts, "", 0, err
	}

	return opts, source, sentId, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, string, *int, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.TreebankPath, "treebank-path", "", "Path to treebank directory or SQLite file (default: treebank_path config key)")
	fs.StringVar(&opts.TreebankPath, "p", "", "alias for -treebank-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] <source> [sentenceId]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show annotation coverage for a treebank or sentence. <source> can be a CoNLL-U file or a treebank ID.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", nil, err
		}
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", nil, err
	}

	if fs.NArg() == 0 || fs.NArg() > 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", nil, errors.New("stat command needs one or two arguments: <source> [sentenceId]")
	}

	source := fs.Arg(0)
	var sentId *int
	if fs.NArg() > 1 {
		v, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			return opts, "", nil, fmt.Errorf("invalid sentenceId: %v", err)
		}
		sentId = &v
	}

	path, err := resolveTreebankPath(opts.TreebankPath)
	if err != nil {
		return opts, "", nil, err
	}
	opts.TreebankPath = path

	if err := validateSource(source, opts.TreebankPath); err != nil {
		return opts, "", nil, err
	}

	return opts, source, sentId, nil
}

// resolveTreebankPath returns the repository path from the -p flag, the
// UDPROJ_TREEBANK_PATH env var or the config file, in that order.
func resolveTreebankPath(flagValue string) (string, error) {
	var overrides map[string]interface{}
	if flagValue != "" {
		overrides = map[string]interface{}{"treebank_path": flagValue}
	}

	cfg, err := config.Load("", overrides)
	if err != nil {
		return "", err
	}
	return cfg.TreebankPath, nil
}

// validateSource accepts an existing file, or a numeric treebank ID when a
// treebank path is set.
func validateSource(source, treebankPath string) error {
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		return nil
	}

	// regex check for digits if not a file
	digitRegex := regexp.MustCompile(`^\d+$`)
	if !digitRegex.MatchString(source) {
		return fmt.Errorf("source not found and not a valid treebank ID: %s", source)
	}

	if treebankPath == "" {
		return fmt.Errorf("%w when not reading from a file", errNoTreebankPath)
	}

	return nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	fs.StringVar(&opts.From, "from", "", "Source directory with CoNLL-U treebanks")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import --from <dir> --to <sqlite_file>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
		}
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseExportArgs(args []string, ui UI) (ExportOptions, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportOptions
	fs.StringVar(&opts.From, "from", "", "Source SQLite database file")
	fs.StringVar(&opts.To, "to", "", "Target directory for CoNLL-U treebanks")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export --from <sqlite_file> --to <dir>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
		}
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fs.Usage()
		return err
	}
	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Cross-lingual UD annotation projection through word alignments\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  project   Project source annotation onto aligned target sentences.\n")
		_, _ = fmt.Fprintf(output, "  ls        List the treebanks of a repository.\n")
		_, _ = fmt.Fprintf(output, "  sentence  Show a specific sentence details.\n")
		_, _ = fmt.Fprintf(output, "  stat      Show annotation coverage for a treebank or sentence.\n")
		_, _ = fmt.Fprintf(output, "  import    Import CoNLL-U treebanks from a directory to SQLite.\n")
		_, _ = fmt.Fprintf(output, "  export    Export treebanks from SQLite to a directory.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version.\n")
		_, _ = fmt.Fprintf(output, "  bash      Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}

// Package main provides the CLI entrypoint for navgen.
//
// navgen generates type-safe navigation helpers:
//   - Reads destination declarations from annotated Go structs (AST + go/types)
//     and from YAML or HCL files
//   - Validates them and reports diagnostics
//   - Generates argument keys, destination descriptors and route builders
//
// Usage:
//
//	navgen analyze [flags]   print the declared destinations and their patterns
//	navgen check [flags]     validate declarations only
//	navgen gen [flags]       validate and write generated files
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"navroute-generator/internal/analyze"
	"navroute-generator/internal/config"
	"navroute-generator/internal/diagnostic"
	"navroute-generator/internal/gen"
	"navroute-generator/internal/schema"
	"navroute-generator/nav"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

const usageText = `usage: navgen <command> [flags]

commands:
  analyze   print the declared destinations and their route patterns
  check     validate declarations
  gen       validate declarations and write generated files

run "navgen <command> -h" for the flags of a command
`

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// options are the parsed command line flags.
type options struct {
	command    string
	configPath string
	sources    stringList
	decls      stringList
	output     string
	pkgName    string
	runtime    string
	verbose    bool
	dump       bool
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}

	switch args[0] {
	case "analyze", "check", "gen":
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(stderr, "navgen: unknown command %q\n\n%s", args[0], usageText)
		return exitUsage
	}

	opts, err := parseFlags(args[0], args[1:], stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	logger := newLogger(opts.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	nav.SetLogger(logger)
	analyze.SetLogger(logger)
	gen.SetLogger(logger)

	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "navgen: %v\n", err)
		return exitFailure
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "navgen: invalid configuration: %v\n", err)
		return exitUsage
	}

	decls, diags, err := collect(&cfg, opts.pkgName != "")
	if err != nil {
		fmt.Fprintf(stderr, "navgen: %v\n", err)
		return exitFailure
	}

	printDiagnostics(stderr, diags, opts.verbose)

	logger.Debug("collected declarations",
		zap.Int("destinations", len(decls)),
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)))

	switch opts.command {
	case "analyze":
		code := runAnalyze(stdout, stderr, decls, opts.dump)
		if diags.HasErrors() {
			code = exitFailure
		}

		return code
	case "check":
		if diags.HasErrors() {
			return exitFailure
		}

		fmt.Fprintf(stdout, "ok: %d destinations\n", len(decls))

		return exitOK
	default:
		if diags.HasErrors() {
			return exitFailure
		}

		return runGen(stdout, stderr, &cfg, decls)
	}
}

func parseFlags(command string, args []string, stderr io.Writer) (*options, error) {
	opts := &options{command: command}

	fs := flag.NewFlagSet("navgen "+command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file (default: "+config.DefaultFilename+" if present)")
	fs.Var(&opts.sources, "pkg", "Go package pattern with annotated structs (repeatable)")
	fs.Var(&opts.decls, "decl", "YAML or HCL declaration file (repeatable)")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if command == "gen" {
		fs.StringVar(&opts.output, "out", "", "output directory")
		fs.StringVar(&opts.pkgName, "package", "", "generated package name")
		fs.StringVar(&opts.runtime, "runtime", "", "import path of the nav runtime")
	}

	if command == "analyze" {
		fs.BoolVar(&opts.dump, "dump", false, "dump the declarations instead of listing them")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "navgen %s: unexpected arguments %v\n", command, fs.Args())
		return nil, errors.New("unexpected arguments")
	}

	return opts, nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (o *options) loadConfig() (config.Config, error) {
	cfg := config.Default()

	path := o.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFilename); err == nil {
			path = config.DefaultFilename
		}
	}

	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if len(o.sources) > 0 || len(o.decls) > 0 {
		cfg.Sources = o.sources
		cfg.Declarations = o.decls
		cfg.Dir = ""
	}

	if o.output != "" {
		cfg.Output = o.output
	}

	if o.pkgName != "" {
		cfg.Package = o.pkgName
	}

	if o.runtime != "" {
		cfg.Runtime = o.runtime
	}

	return cfg, nil
}

// collect gathers declarations from source packages and declaration files,
// in that order, and validates them together.
func collect(cfg *config.Config, packageFromFlag bool) ([]schema.DestinationDecl, *diagnostic.Diagnostics, error) {
	file, err := schema.LoadFiles(cfg.Declarations...)
	if err != nil {
		return nil, nil, err
	}

	diags := &diagnostic.Diagnostics{}

	if len(cfg.Sources) > 0 {
		a := analyze.NewAnalyzer()
		a.Dir = cfg.Dir

		decls, err := a.LoadPackages(cfg.Sources...)
		if err != nil {
			return nil, nil, err
		}

		diags.Merge(*a.Diagnostics())
		file.Destinations = append(decls, file.Destinations...)
	}

	if file.Package != "" && !packageFromFlag {
		cfg.Package = file.Package
	}

	diags.Merge(*schema.Validate(file))

	return file.Destinations, diags, nil
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics, verbose bool) {
	for _, d := range diags.All() {
		if d.Severity == diagnostic.DiagnosticInfo && !verbose {
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

func runAnalyze(stdout, stderr io.Writer, decls []schema.DestinationDecl, dump bool) int {
	if dump {
		spew.Fdump(stdout, decls)
		return exitOK
	}

	code := exitOK

	for i := range decls {
		d := &decls[i]

		dest, err := d.Destination()
		if err != nil {
			fmt.Fprintf(stderr, "navgen: %s: %v\n", d.Label(), err)
			code = exitFailure

			continue
		}

		fmt.Fprintf(stdout, "%s\t%s\n", d.GoName(), dest.Pattern())
	}

	return code
}

func runGen(stdout, stderr io.Writer, cfg *config.Config, decls []schema.DestinationDecl) int {
	files, err := gen.NewGenerator(cfg.GeneratorConfig()).Generate(decls)
	if err != nil {
		fmt.Fprintf(stderr, "navgen: %v\n", err)
		return exitFailure
	}

	if err := gen.WriteFiles(files, cfg.Output); err != nil {
		fmt.Fprintf(stderr, "navgen: %v\n", err)
		return exitFailure
	}

	for _, f := range files {
		fmt.Fprintf(stdout, "wrote %s\n", f.Filename)
	}

	return exitOK
}

// newLogger returns a console logger at debug level when verbose and a
// JSON logger for warnings and above otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if verbose {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
	}

	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.WarnLevel))
}

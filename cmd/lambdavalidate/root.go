// Package main implements lambdavalidate, the validator CLI surface
// spec.md §6 describes: "validate [-f <format>] [-s <schema-file>]
// <data-file>", a recognised-format table, a default-schema-by-format
// table, auto format inference by extension, and a human-readable
// ✅/❌ report with a nonzero exit code on failure.
package main

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lambda-lang/core/diag"
	"github.com/lambda-lang/core/driver/jsondriver"
	"github.com/lambda-lang/core/heap"
	"github.com/lambda-lang/core/internal/logging"
	"github.com/lambda-lang/core/location"
	"github.com/lambda-lang/core/schema"
	"github.com/lambda-lang/core/schema/load"
	"github.com/lambda-lang/core/validate"
)

//go:embed schemas/*.ls
var defaultSchemas embed.FS

// formatTable is spec.md §6's recognised format vocabulary, in the order
// the spec lists them. "auto" is not an entry here; the -f flag accepts it
// separately and resolves it through inferFormat.
var formatTable = []string{
	"html", "eml", "vcf", "json", "xml", "csv", "markdown", "yaml", "toml", "ini", "rtf", "latex", "rst",
}

// defaultSchemaFile is spec.md §6's "Default schema selection by format"
// table. Every format gets a matching "<fmt>_schema.ls" except html,
// which the spec names explicitly as "html5_schema.ls".
func defaultSchemaFile(format string) string {
	if format == "html" {
		return "html5_schema.ls"
	}
	for _, f := range formatTable {
		if f == format {
			return format + "_schema.ls"
		}
	}
	return "doc_schema.ls"
}

// extToFormat infers a format tag from a file extension, the CLI's
// "auto" mode (SPEC_FULL.md's SUPPLEMENTED FEATURES: "cmd/lambdavalidate
// infers by file extension only; network/MIME sniffing is out of scope").
var extToFormat = map[string]string{
	".json":     "json",
	".xml":      "xml",
	".html":     "html",
	".htm":      "html",
	".eml":      "eml",
	".vcf":      "vcf",
	".csv":      "csv",
	".md":       "markdown",
	".markdown": "markdown",
	".yaml":     "yaml",
	".yml":      "yaml",
	".toml":     "toml",
	".ini":      "ini",
	".rtf":      "rtf",
	".tex":      "latex",
	".latex":    "latex",
	".rst":      "rst",
}

func inferFormat(path string) string {
	if f, ok := extToFormat[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return "unknown"
}

// rootTypeName is the declared type a loaded default/custom schema is
// validated against. A schema that declares a type literally named
// "Root" wins; otherwise the first declaration in the file is used, so a
// single-declaration schema file ("type Point = {...}") works with no
// extra convention required from the caller.
func rootTypeName(s *schema.Schema) (string, error) {
	names := s.TypeNames()
	if len(names) == 0 {
		return "", fmt.Errorf("schema declares no types")
	}
	for _, n := range names {
		if n == "Root" {
			return n, nil
		}
	}
	return names[0], nil
}

type cliFlags struct {
	format     string
	schemaPath string
	logLevel   string
	logFile    string
	maxErrors  int
	maxDepth   int
	jsonOutput bool
}

// sourceText is a diag.SourceProvider backed by the handful of files a
// single validate invocation ever reads (the schema and the data file),
// keyed by the location.SourceID each was decoded under. It exists so
// diag.Renderer can print a source excerpt under a failing span instead of
// just a bare message.
type sourceText map[location.SourceID][]byte

func (s sourceText) Content(span location.Span) ([]byte, bool) {
	b, ok := s[span.Source]
	return b, ok
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "validate [-f format] [-s schema-file] <data-file>",
		Short: "Validate a document against a Lambda structural schema",
		Long: "lambdavalidate decodes a data file into the Lambda value runtime " +
			"and checks it against a declared schema (spec.md §6's Validator CLI surface).",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto",
		fmt.Sprintf("input format: auto|%s", strings.Join(formatTable, "|")))
	cmd.Flags().StringVarP(&flags.schemaPath, "schema", "s", "",
		"schema file to validate against (default: the format's built-in schema)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level: error|warn|info|debug")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "log file path (empty logs to stderr)")
	cmd.Flags().IntVar(&flags.maxErrors, "max-errors", 100, "stop collecting after N validation errors (0 = unlimited)")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 128, "maximum validation recursion depth")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "emit the diagnostic result as JSON instead of a text report")

	return cmd
}

func runValidate(cmd *cobra.Command, flags *cliFlags, dataPath string) error {
	level, err := logging.ParseLevel(flags.logLevel)
	if err != nil {
		return err
	}
	logger, cleanup, err := logging.Setup(level, flags.logFile)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()

	format := flags.format
	if format == "" || format == "auto" {
		format = inferFormat(dataPath)
	}
	logger.Debug("resolved format", "requested", flags.format, "resolved", format, "file", dataPath)

	schemaText, schemaName, err := loadSchemaText(flags.schemaPath, format)
	if err != nil {
		return err
	}

	srcs := sourceText{}
	srcs[location.NewSourceID(schemaName)] = []byte(schemaText)

	sch, diags, err := load.LoadString(schemaText, schemaName, load.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	if diags.HasErrors() {
		reportDiag(out, diags, "schema", flags.jsonOutput, srcs)
		return errExit(1)
	}

	typeName, err := rootTypeName(sch)
	if err != nil {
		return fmt.Errorf("schema %s: %w", schemaName, err)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("read data file: %w", err)
	}

	if format != "json" {
		fmt.Fprintf(out, "❌ Validation FAILED\n")
		fmt.Fprintf(out, "  $: format %q is not decoded by this build (only json is implemented; spec.md §1's format-parser Non-goal)\n", format)
		return errExit(1)
	}

	sourceID, err := location.SourceIDFromPath(dataPath)
	if err != nil {
		sourceID = location.NewSourceID("<stdin>")
	}
	srcs[sourceID] = data

	h := heap.New(logger)
	frame := h.FrameStart()
	defer h.FrameEnd(frame)

	rootType, _ := sch.ResolveType(typeName)
	driver := jsondriver.New()
	item, decodeDiags := driver.Decode(h, sourceID, data, rootType)
	if decodeDiags.HasErrors() {
		reportDiag(out, decodeDiags, "decode", flags.jsonOutput, srcs)
		return errExit(1)
	}

	v := validate.New(h,
		validate.WithLogger(logger),
		validate.WithMaxErrors(flags.maxErrors),
		validate.WithMaxDepth(flags.maxDepth),
	)
	result := v.Validate(item, sch, typeName)

	if result.Valid() {
		fmt.Fprintln(out, "✅ Validation PASSED")
		for i, w := range result.Warnings() {
			fmt.Fprintf(out, "  [%d] warning: %s\n", i+1, w.String())
		}
		return nil
	}

	fmt.Fprintln(out, "❌ Validation FAILED")
	for i, e := range result.Errors() {
		fmt.Fprintf(out, "  [%d] %s: %s\n", i+1, e.Code.String(), e.String())
	}
	if result.LimitReached() {
		fmt.Fprintln(out, "  (validation stopped early: a limit was reached)")
	}
	return errExit(1)
}

// loadSchemaText resolves the schema source text: -s's file if given,
// otherwise the embedded default for format (spec.md §6's default-schema
// table).
func loadSchemaText(schemaPath, format string) (text, sourceName string, err error) {
	if schemaPath != "" {
		b, err := os.ReadFile(schemaPath)
		if err != nil {
			return "", "", fmt.Errorf("read schema file: %w", err)
		}
		return string(b), "file:" + filepath.Base(schemaPath), nil
	}
	name := defaultSchemaFile(format)
	b, err := defaultSchemas.ReadFile("schemas/" + name)
	if err != nil {
		return "", "", fmt.Errorf("no built-in schema for format %q: %w", format, err)
	}
	return string(b), "embedded:" + name, nil
}

// reportDiag prints a schema or decode failure, either as the --json wire
// format (diag.FormatResultJSON) or as a text report with source excerpts
// (diag.Renderer, backed by srcs). stage labels which pipeline step failed
// (schema load vs. instance decode) since a single diag.Result on its own
// doesn't carry that context.
func reportDiag(w io.Writer, res diag.Result, stage string, jsonOutput bool, srcs sourceText) {
	if jsonOutput {
		r := diag.NewRenderer()
		data := r.FormatResultJSON(res)
		fmt.Fprintf(w, "%s\n", data)
		return
	}
	r := diag.NewRenderer(diag.WithSourceProvider(srcs), diag.WithExcerpts(true))
	fmt.Fprintf(w, "%s validation failed:\n", stage)
	fmt.Fprintln(w, r.FormatResult(res))
}

// exitCode carries a process exit status through cobra's error-returning
// RunE. The root command sets SilenceErrors, so main is the only place
// that ever turns a returned error into terminal output; exitCode's
// message is empty because the FAILED report was already printed to
// stdout by the time runValidate returns it.
type exitCode int

func (e exitCode) Error() string { return "" }

func errExit(code int) error { return exitCode(code) }

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if ec, ok := err.(exitCode); ok {
			os.Exit(int(ec))
		}
		fmt.Fprintln(os.Stderr, "lambdavalidate:", err)
		os.Exit(1)
	}
}

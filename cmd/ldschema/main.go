package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/reoring/ldschema"
	"github.com/reoring/ldschema/builder"
	"github.com/reoring/ldschema/htmlsafe"
	"github.com/reoring/ldschema/i18n"
	"github.com/reoring/ldschema/internal/logging"
	"github.com/reoring/ldschema/validate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "validate":
		return validateCmd(args[1:], stdin, stdout, stderr)
	case "generate":
		return generateCmd(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ldschema CLI\n\nUsage:\n  ldschema validate [-lang en|fr] [-format text|json] [-extended] [file...]\n  ldschema generate -type T -input record.yaml [-config config.yaml] [-strip-html] [-script] [-check]\n\nTypes:\n  "+strings.Join(generatorNames(), ", "))
}

func newLogger(level string, stderr io.Writer) zerolog.Logger {
	cfg := logging.DefaultConfig()
	if level != "" {
		cfg.Level = level
	}
	return logging.New(cfg, stderr)
}

func validateCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lang := fs.String("lang", "en", "message language ("+strings.Join(i18n.Languages(), "|")+")")
	outFmt := fs.String("format", "text", "output format (text|json)")
	extended := fs.Bool("extended", false, "also check WebSite, LocalBusiness, VideoObject and HowTo")
	logLevel := fs.String("log-level", "", "log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *outFmt != "text" && *outFmt != "json" {
		fmt.Fprintf(stderr, "validate: unknown format %q\n", *outFmt)
		return 2
	}
	log := logging.WithComponent(newLogger(*logLevel, stderr), "validate")
	opts := []validate.Option{
		validate.WithTranslator(i18n.New(*lang)),
		validate.WithLogger(log),
	}
	if *extended {
		opts = append(opts, validate.WithExtendedRules())
	}
	v := validate.New(opts...)

	type input struct {
		name string
		data []byte
	}
	var inputs []input
	if fs.NArg() == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "validate: read stdin: %v\n", err)
			return 2
		}
		inputs = append(inputs, input{name: "<stdin>", data: data})
	}
	for _, name := range fs.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(stderr, "validate: %v\n", err)
			return 2
		}
		inputs = append(inputs, input{name: name, data: data})
	}

	code := 0
	for _, in := range inputs {
		rep := v.ValidateBytes(in.data)
		if !rep.Valid {
			code = 1
		}
		if err := writeReport(stdout, *outFmt, in.name, rep); err != nil {
			fmt.Fprintf(stderr, "validate: write: %v\n", err)
			return 2
		}
	}
	return code
}

type fileReport struct {
	File string `json:"file"`
	ldschema.Report
}

func writeReport(w io.Writer, format, name string, rep ldschema.Report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(fileReport{File: name, Report: rep})
	}
	status := "valid"
	if !rep.Valid {
		status = "invalid"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %s\n", name, status)
	for _, e := range rep.Errors {
		fmt.Fprintf(&buf, "  error: %s\n", e)
	}
	for _, warn := range rep.Warnings {
		fmt.Fprintf(&buf, "  warning: %s\n", warn)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func generateCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typ := fs.String("type", "", "document type ("+strings.Join(generatorNames(), "|")+")")
	inPath := fs.String("input", "", "YAML record file")
	cfgPath := fs.String("config", "", "site config YAML (defaults plus LDSCHEMA_* env)")
	stripHTML := fs.Bool("strip-html", false, "remove markup from record text fields")
	script := fs.Bool("script", false, "wrap output in a <script type=\"application/ld+json\"> element")
	check := fs.Bool("check", false, "validate the generated document and exit 1 on errors")
	logLevel := fs.String("log-level", "", "log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	gen, ok := generators[*typ]
	if !ok || *inPath == "" {
		fs.Usage()
		return 2
	}
	log := logging.WithComponent(newLogger(*logLevel, stderr), "generate")

	cfg, err := ldschema.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "generate: %v\n", err)
		return 2
	}
	data, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(stderr, "generate: %v\n", err)
		return 2
	}
	out, err := gen(builder.New(cfg), data, *stripHTML)
	if err != nil {
		fmt.Fprintf(stderr, "generate: %s: %v\n", *inPath, err)
		return 2
	}
	log.Debug().Str("type", *typ).Str("input", *inPath).Msg("generated JSON-LD document")

	code := 0
	if *check {
		rep := validate.New(validate.WithExtendedRules(), validate.WithLogger(log)).Validate(out)
		if !rep.Valid {
			code = 1
		}
		for _, e := range rep.Errors {
			fmt.Fprintf(stderr, "error: %s\n", e)
		}
		for _, warn := range rep.Warnings {
			fmt.Fprintf(stderr, "warning: %s\n", warn)
		}
	}
	if *script {
		out = htmlsafe.ScriptTag(out)
	}
	fmt.Fprintln(stdout, out)
	return code
}

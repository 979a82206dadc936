// Command paramval validates a JSON value against a parameter
// description and prints the processed (defaulted, coerced) value.
//
// Usage:
//
//	paramval -schema schema.json [-value value.json] [-no-cast]
//
// The schema file may be JSON or YAML (selected by extension). The
// value is read from -value, or from stdin when -value is omitted.
// Exit status is 1 when validation fails and 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	paramval "github.com/paramval/paramval"
	"github.com/paramval/paramval/descriptor"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("paramval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "parameter description file (.json or .yaml)")
	valuePath := fs.String("value", "", "JSON value file (default: stdin)")
	noCast := fs.Bool("no-cast", false, "disable integer to string coercion")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *schemaPath == "" {
		fmt.Fprintln(stderr, "paramval: -schema is required")
		fs.Usage()
		return 2
	}

	schema, err := loadSchema(*schemaPath)
	if err != nil {
		fmt.Fprintf(stderr, "paramval: %v\n", err)
		return 2
	}

	raw, err := readValue(*valuePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "paramval: %v\n", err)
		return 2
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		fmt.Fprintf(stderr, "paramval: decode value: %v\n", err)
		return 2
	}

	var opts []paramval.ProcessorOption
	if *noCast {
		opts = append(opts, paramval.WithIntToStringCast(false))
	}
	res := paramval.NewProcessor(opts...).Process(schema, &value)
	if !res.Valid() {
		for _, msg := range res.Errors() {
			fmt.Fprintln(stderr, msg)
		}
		return 1
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "paramval: encode value: %v\n", err)
		return 2
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

func loadSchema(path string) (*paramval.Parameter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return descriptor.ImportYAML(data)
	default:
		return descriptor.ImportJSON(data)
	}
}

func readValue(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

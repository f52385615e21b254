package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	mtschema "github.com/kujaku11/mtschema"
	"github.com/kujaku11/mtschema/mt"
)

func main() {
	fs := flag.NewFlagSet("mtvalidate", flag.ExitOnError)
	var schemaName string
	var list bool
	var export bool
	fs.StringVar(&schemaName, "schema", "survey", "catalog schema to validate against")
	fs.BoolVar(&list, "list", false, "list catalog schemas and exit")
	fs.BoolVar(&export, "export", false, "print the schema's JSON Schema projection and exit")
	fs.Usage = usage(fs)
	_ = fs.Parse(os.Args[1:])

	reg := mt.Standards()
	if list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	s, err := reg.Lookup(schemaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mtvalidate: unknown schema %q (try -list)\n", schemaName)
		os.Exit(2)
	}

	if export {
		js, err := s.JSONSchema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "mtvalidate: %v\n", err)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(js, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "mtvalidate: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mtvalidate: %v\n", err)
		os.Exit(1)
	}

	var src mtschema.Source
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		src = mtschema.YAMLBytes(data)
	default:
		src = mtschema.JSONBytes(data)
	}

	if _, err := mtschema.ParseFrom(context.Background(), s, src); err != nil {
		if iss, ok := mtschema.AsIssues(err); ok {
			for _, it := range iss {
				line := it.Code + " at " + it.Path + ": " + it.Message
				if it.Hint != "" {
					line += " (" + it.Hint + ")"
				}
				fmt.Fprintln(os.Stderr, line)
			}
			fmt.Fprintf(os.Stderr, "mtvalidate: %d issue(s) in %s\n", len(iss), path)
		} else {
			fmt.Fprintf(os.Stderr, "mtvalidate: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("%s: valid %s\n", path, schemaName)
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "Usage:\n  mtvalidate [-schema NAME] FILE.(json|yaml)\n  mtvalidate -list\n  mtvalidate -schema NAME -export")
		fs.PrintDefaults()
	}
}

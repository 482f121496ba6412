package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mobyle2/xmlbridge/internal/commands"
	"github.com/mobyle2/xmlbridge/internal/config"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "version", "-v", "--version":
		fmt.Printf("xmlbridge v%s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(1)
	}

	commands.Convert(*opts)
}

func parseArgs(args []string) (*commands.Options, error) {
	opts := &commands.Options{}
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := splitFlag(arg)

		takeValue := func() (string, error) {
			if hasValue {
				return value, nil
			}
			i++
			if i >= len(args) {
				return "", fmt.Errorf("flag %s needs a value", name)
			}
			return args[i], nil
		}

		switch name {
		case "-t", "--type":
			v, err := takeValue()
			if err != nil {
				return nil, err
			}
			opts.Type = v
		case "-o", "--out":
			v, err := takeValue()
			if err != nil {
				return nil, err
			}
			opts.Out = v
		case "--query":
			v, err := takeValue()
			if err != nil {
				return nil, err
			}
			opts.Query = v
		case "--strip":
			opts.Strip = true
			opts.StripSet = true
		case "--no-strip":
			opts.Strip = false
			opts.StripSet = true
		case "--check":
			opts.Check = true
		case "--verbose":
			opts.Verbose = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag %s", arg)
			}
			positional = append(positional, arg)
		}
	}

	if len(positional) != 1 {
		return nil, fmt.Errorf("expected exactly one input file, got %d", len(positional))
	}
	opts.Input = positional[0]
	return opts, nil
}

// splitFlag separates "--flag=value" into its parts.
func splitFlag(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "-") {
		return arg, "", false
	}
	if i := strings.Index(arg, "="); i >= 0 {
		return arg[:i], arg[i+1:], true
	}
	return arg, "", false
}

func printUsage() {
	usage := fmt.Sprintf(`xmlbridge - Convert XML to JSON/YAML or the other way around

Usage:
  xmlbridge [options] <input-file>

Options:
  -t, --type TYPE   Conversion: xml2json, xml2yaml or yaml2xml;
                    any other value converts JSON back to XML
  -o, --out FILE    Write to FILE instead of stdout
  --strip           Trim whitespace-only text when converting from XML
  --no-strip        Keep all whitespace (the default)
  --query EXPR      Convert only the first element matching the XPath
                    expression (XML input only)
  --check           Verify the round trip and show a diff instead of
                    writing output
  --verbose         Enable debug logging
  version           Show version information
  help              Show this help message

Examples:
  xmlbridge -t xml2json -o file.json file.xml
  xmlbridge -t xml2json --query "//entry[@id='a1']" file.xml
  xmlbridge -t xml2yaml file.xml
  xmlbridge file.json
  xmlbridge -t xml2json --check file.xml

Configuration:
  Config file: %s

For more information, visit: https://github.com/mobyle2/xmlbridge
`, config.ConfigPath())
	fmt.Print(usage)
}

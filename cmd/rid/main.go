// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// rid is a diagnostic command-line wrapper around the resource
// identifier library.
//
// Usage:
//
//	rid check [--quiet] [--verbose] <candidate>...
//	rid fields [--json] <rid>...
//	rid new --service <s> [--instance <i>] --type <t> <locator-part>...
//
// "check" exits 0 only if every candidate is a valid resource
// identifier. "fields" prints the four components of each identifier.
// "new" assembles and prints a canonical identifier from components.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/rid/lib/rid"
)

const usage = `rid - resource identifier diagnostics

USAGE
    rid check [--quiet] [--verbose] <candidate>...
    rid fields [--json] <rid>...
    rid new --service <s> [--instance <i>] --type <t> <locator-part>...

COMMANDS
    check    Validate candidate strings; exit 0 only if all are valid
    fields   Print the service, instance, type, and locator components
    new      Assemble a canonical identifier from components
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "check":
		return runCheck(args[1:])
	case "fields":
		return runFields(args[1:])
	case "new":
		return runNew(args[1:])
	case "--help", "help", "-h":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q (see 'rid --help')", args[0])
	}
}

func runCheck(args []string) error {
	flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
	quiet := flagSet.BoolP("quiet", "q", false, "suppress per-candidate output")
	verbose := flagSet.BoolP("verbose", "v", false, "name the first malformed component of invalid candidates")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	candidates := flagSet.Args()
	if len(candidates) == 0 {
		return fmt.Errorf("check: no candidates given")
	}

	invalid := 0
	for _, candidate := range candidates {
		ok := rid.IsValid(candidate)
		if !ok {
			invalid++
		}
		if *quiet {
			continue
		}
		if ok {
			fmt.Printf("valid\t%s\n", candidate)
		} else if *verbose {
			fmt.Printf("invalid\t%s\t(%s)\n", candidate, diagnose(candidate))
		} else {
			fmt.Printf("invalid\t%s\n", candidate)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d candidates invalid", invalid, len(candidates))
	}
	return nil
}

// diagnose names the first problem in an invalid candidate. The parse
// path itself reports only overall validity, so this re-splits the
// candidate and runs the per-component predicates; it is best-effort
// and only used for human-readable output.
func diagnose(candidate string) string {
	const prefix = "ri."
	if len(candidate) < len(prefix) || candidate[:len(prefix)] != prefix {
		return `missing "ri." prefix`
	}
	rest := candidate[len(prefix):]

	// Split on the first three separators; the locator keeps any
	// further dots.
	components := make([]string, 0, 4)
	for len(components) < 3 {
		i := strings.IndexByte(rest, '.')
		if i < 0 {
			return fmt.Sprintf("only %d of 4 components present", len(components)+1)
		}
		components = append(components, rest[:i])
		rest = rest[i+1:]
	}
	components = append(components, rest)

	checks := []struct {
		name  string
		valid func(string) bool
	}{
		{rid.FieldService, rid.IsValidService},
		{rid.FieldInstance, rid.IsValidInstance},
		{rid.FieldType, rid.IsValidType},
		{rid.FieldLocator, rid.IsValidLocator},
	}
	for i, check := range checks {
		if !check.valid(components[i]) {
			return fmt.Sprintf("malformed %s component %q", check.name, components[i])
		}
	}
	return "malformed"
}

// fieldsOutput is the --json shape for one identifier.
type fieldsOutput struct {
	RID      string `json:"rid"`
	Service  string `json:"service"`
	Instance string `json:"instance"`
	Type     string `json:"type"`
	Locator  string `json:"locator"`
}

func runFields(args []string) error {
	flagSet := pflag.NewFlagSet("fields", pflag.ContinueOnError)
	asJSON := flagSet.Bool("json", false, "output as JSON instead of a table")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	inputs := flagSet.Args()
	if len(inputs) == 0 {
		return fmt.Errorf("fields: no identifiers given")
	}

	parsed := make([]rid.ResourceIdentifier, 0, len(inputs))
	for _, input := range inputs {
		r, err := rid.Parse(input)
		if err != nil {
			return err
		}
		parsed = append(parsed, r)
	}

	if *asJSON {
		encoder := json.NewEncoder(os.Stdout)
		for _, r := range parsed {
			output := fieldsOutput{
				RID:      r.String(),
				Service:  r.Service(),
				Instance: r.Instance(),
				Type:     r.Type(),
				Locator:  r.Locator(),
			}
			if err := encoder.Encode(output); err != nil {
				return err
			}
		}
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SERVICE\tINSTANCE\tTYPE\tLOCATOR")
	for _, r := range parsed {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", r.Service(), r.Instance(), r.Type(), r.Locator())
	}
	return writer.Flush()
}

func runNew(args []string) error {
	flagSet := pflag.NewFlagSet("new", pflag.ContinueOnError)
	service := flagSet.String("service", "", "service component (required)")
	instance := flagSet.String("instance", "", "instance component (may be empty)")
	typ := flagSet.String("type", "", "type component (required)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	parts := flagSet.Args()
	if len(parts) == 0 {
		return fmt.Errorf("new: no locator parts given")
	}

	builder := rid.NewBuilder().Instance(*instance)
	if flagSet.Changed("service") {
		builder.Service(*service)
	}
	if flagSet.Changed("type") {
		builder.Type(*typ)
	}
	r, err := builder.Build(parts[0], parts[1:]...)
	if err != nil {
		return err
	}
	fmt.Println(r)
	return nil
}

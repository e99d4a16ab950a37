package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/teris-io/cli"

	"github.com/geange/regexfa"
	"github.com/geange/regexfa/automaton"
)

var description = strings.ReplaceAll(`
regexfa parses an extended regular-expression surface syntax into an AST and
lowers it to a finite-state automaton. It parses a pattern, prints it back
out for a round-trip check, lists the named-automaton identifiers it
references, lowers it to an automaton, and reports acceptance for any probe
strings given on the command line.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("pattern", "The pattern to parse and lower")).
	WithArg(cli.NewArg("probes", "Strings to test the lowered automaton against").
		AsOptional().WithType(cli.TypeString)).
	WithOption(cli.NewOption("flags", "Comma-separated syntax flags to enable: "+
		"intersection,complement,empty,anystring,automatonref,interval,caseinsensitive,all").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("bindings", "A file of 'name=pattern' lines resolving <name> references").
		WithType(cli.TypeString)).
	WithAction(handle)

func main() { os.Exit(app.Run(os.Args, os.Stdout)) }

func handle(args []string, options map[string]string) int {
	pattern, probes := args[0], args[1:]

	flags, err := parseFlags(options["flags"])
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}

	r, err := regexfa.New(pattern, regexfa.WithSyntaxFlags(flags))
	if err != nil {
		fmt.Printf("ERROR: unable to complete 'parsing' pass: %s\n", err)
		return -1
	}

	fmt.Printf("parsed:  %s\n", pattern)
	fmt.Printf("printed: %s\n", r.String())

	ids := sortedIdentifiers(r.Identifiers())
	if len(ids) > 0 {
		fmt.Printf("refers to: %s\n", strings.Join(ids, ", "))
	}

	var toAutoOpts []regexfa.ToAutomatonOption
	if path := options["bindings"]; path != "" {
		bindings, err := loadBindings(path)
		if err != nil {
			fmt.Printf("ERROR: unable to load bindings: %s\n", err)
			return -1
		}
		toAutoOpts = append(toAutoOpts, regexfa.WithBindings(bindings))
	}

	a, err := r.ToAutomaton(toAutoOpts...)
	if err != nil {
		fmt.Printf("ERROR: unable to complete 'lowering' pass: %s\n", err)
		return -1
	}

	fmt.Printf("automaton: %d states, %d transitions, deterministic=%v\n",
		a.GetNumStates(), a.GetNumTransitions(), a.IsDeterministic())

	for _, probe := range probes {
		fmt.Printf("accepts %q: %v\n", probe, automaton.Run(a, probe))
	}

	return 0
}

// parseFlags turns the --flags option's comma-separated names into a
// regexfa.Flags bitmask, defaulting to regexfa.All when the option is
// unset, the same default regexfa.New itself applies.
func parseFlags(raw string) (regexfa.Flags, error) {
	if raw == "" {
		return regexfa.All, nil
	}

	flags := regexfa.None
	for _, name := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "intersection":
			flags |= regexfa.Intersection
		case "complement":
			flags |= regexfa.Complement
		case "empty":
			flags |= regexfa.Empty
		case "anystring":
			flags |= regexfa.AnyString
		case "automatonref":
			flags |= regexfa.AutomatonRef
		case "interval":
			flags |= regexfa.Interval
		case "caseinsensitive":
			flags |= regexfa.CaseInsensitive
		case "all":
			flags |= regexfa.All
		default:
			return 0, fmt.Errorf("unknown syntax flag %q", name)
		}
	}
	return flags, nil
}

// loadBindings reads "name=pattern" lines, parsing and lowering each
// pattern under the default (All) flag set so a binding file can itself
// reference the full surface syntax.
func loadBindings(path string) (regexfa.Bindings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bindings := regexfa.Bindings{}
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, pattern, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected 'name=pattern', got %q", lineNo, line)
		}
		sub, err := regexfa.New(pattern)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		a, err := sub.ToAutomaton(regexfa.WithBindings(bindings))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		bindings[strings.TrimSpace(name)] = a
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bindings, nil
}

func sortedIdentifiers(ids map[string]struct{}) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Package envref checks that ${env:NAME} placeholders inside connector
// arguments resolve against the environment.
package envref

import (
	"os"
	"regexp"
	"sort"

	"github.com/de-tools/conn-audit/pkg/models/domain"
)

var placeholderPattern = regexp.MustCompile(`\$\{env:([A-Za-z0-9_]+)\}`)

// LookupFunc resolves an environment variable name. It matches the shape of
// os.LookupEnv so the process environment can be swapped out in tests.
type LookupFunc func(name string) (string, bool)

// Validate scans every argument of every connector for environment-reference
// placeholders and resolves each one through lookup. A nil lookup consults the
// process environment.
//
// The report is invalid when the set is absent or at least one reference does
// not resolve.
func Validate(set domain.ConfigSet, lookup LookupFunc) domain.EnvValidationReport {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if set == nil {
		return domain.EnvValidationReport{Valid: false}
	}

	report := domain.EnvValidationReport{Valid: true}
	unresolved := make(map[string]bool)

	for _, id := range set.IDs() {
		cfg := set[id]
		for _, arg := range cfg.Args {
			for _, match := range placeholderPattern.FindAllStringSubmatch(arg, -1) {
				name := match[1]
				_, ok := lookup(name)
				report.References = append(report.References, domain.EnvReference{
					Variable:    name,
					Resolved:    ok,
					ConnectorID: id,
					Placeholder: match[0],
				})
				if !ok {
					unresolved[name] = true
				}
			}
		}
	}

	if len(unresolved) > 0 {
		report.Valid = false
		for name := range unresolved {
			report.Unresolved = append(report.Unresolved, name)
		}
		sort.Strings(report.Unresolved)
	}

	return report
}

// Package updateversion provides the version-calculation and
// pattern-substitution core of the updateversion tool.
//
// It provides functionalities for:
//   - Parsing and formatting four-part dotted version numbers
//     ("major.minor.build.revision").
//   - Computing a new version from an existing one under selectable build
//     policies (fixed, increment, monthday, buildday) and revision policies
//     (fixed, increment, automatic), with an optional pin override.
//   - Locating an AssemblyVersion or AssemblyFileVersion attribute (with or
//     without the Attribute suffix) in arbitrary text and substituting
//     exactly the first occurrence's quoted version literal, leaving every
//     other byte of the text untouched.
//
// The package performs no I/O. Callers hand it an in-memory text buffer and
// a validated Config; wall-clock access for the date-derived policies is
// injected through the Clock interface so calculations stay deterministic
// under test.
//
// Usage Example:
//
//	cfg := updateversion.Config{
//	    Build:    updateversion.BuildIncrement,
//	    Revision: updateversion.RevisionFixed,
//	    Kind:     updateversion.KindAssembly,
//	}
//	res, err := updateversion.Apply(input, cfg, nil)
//	if err != nil {
//	    log.Fatalf("version update failed: %v", err)
//	}
//	if !res.Matched {
//	    log.Println("no version attribute found; output unchanged")
//	}
//	fmt.Print(res.Output)
package updateversion

// Package main implements the updateversion CLI tool.
//
// The updateversion tool is a command-line filter that maintains the version
// number embedded in an AssemblyVersion or AssemblyFileVersion attribute. It
// reads text from a file or standard input, locates the first attribute of
// the selected kind, computes a new four-part version (major.minor.build.revision)
// from the existing one, and writes the text back with only that version
// literal replaced. Major and minor are never changed by the tool.
//
// Command Usage:
//
//	updateversion [flags]
//
// Flags:
//
//	-i, --input:     Input file to scan, or "-" for standard input (default "-").
//	-o, --output:    Output file to write, or "-" for standard output (default "-").
//	-b, --build:     Build number policy (default "fixed"):
//	                   fixed      keep the existing build number
//	                   increment  existing build number + 1
//	                   monthday   months since --startdate * 100 + day of month
//	                   buildday   year % 10 * 1000 + day of year
//	-r, --revision:  Revision number policy (default "automatic"):
//	                   automatic  seconds since local midnight / 10
//	                   increment  existing revision number + 1
//	                   fixed      keep the existing revision number
//	-s, --startdate: Project start date (YYYY-MM-DD). Required by the monthday
//	                 policy; without it monthday keeps the build number fixed.
//	-p, --pin:       Replace the whole version with this literal, ignoring all
//	                 policies.
//	-k, --kind:      Which attribute to update: "assembly" or "file"
//	                 (default "assembly").
//	-e, --encoding:  Text encoding used to read and write the stream
//	                 (default "utf-8").
//	-q, --quiet:     Only log errors.
//	    --version:   Display the version of the updateversion CLI and exit.
//
// Examples:
//
//	# Increment the build number of AssemblyVersion("1.2.3.4") -> "1.2.4.x"
//	updateversion -b increment < AssemblyInfo.cs > AssemblyInfo.cs.new
//
//	# Date-derived build number counted from the project start date
//	updateversion -b monthday -s 2002-11-01 -i AssemblyInfo.cs -o AssemblyInfo.cs
//
//	# Update the AssemblyFileVersion attribute instead
//	updateversion -k file -b increment -i AssemblyInfo.vb -o AssemblyInfo.vb
//
//	# Force an exact version, ignoring the policies
//	updateversion --pin 3.0.0.0 -i AssemblyInfo.cs -o AssemblyInfo.cs
//
// When the input contains no matching attribute the tool prints a warning to
// standard error, emits the input unchanged, and exits 0. Malformed version
// literals and invalid configurations exit 1 without writing partial output.
//
// For the programmatic API, see the documentation in the "pkg" package.
package main

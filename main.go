// Package main implements a CLI filter that updates the version number inside
// an AssemblyVersion or AssemblyFileVersion attribute found in a text stream.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/asmtools/updateversion/internal/fileio"
	updateversion "github.com/asmtools/updateversion/pkg"
)

func usage() {
	msg := `Usage:
  updateversion [options]

Reads text from standard input (or --input), finds the first AssemblyVersion
or AssemblyFileVersion attribute, computes a new four-part version number
according to the selected build and revision policies, and writes the text
with the version replaced to standard output (or --output). When no attribute
is found, the text passes through unchanged and a warning is printed.

Examples:
  updateversion -b increment < AssemblyInfo.cs > AssemblyInfo.cs.new
  updateversion -b monthday -s 2002-11-01 -i AssemblyInfo.cs -o AssemblyInfo.cs
  updateversion --pin 1.2.3.4 -k file -i AssemblyInfo.vb -o AssemblyInfo.vb

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func main() {
	input := flag.StringP("input", "i", "-", "Input file to scan, or - for standard input")
	output := flag.StringP("output", "o", "-", "Output file to write, or - for standard output")
	buildArg := flag.StringP("build", "b", "fixed", "Build number policy: fixed, increment, monthday or buildday")
	revisionArg := flag.StringP("revision", "r", "automatic", "Revision number policy: fixed, increment or automatic")
	startDateArg := flag.StringP("startdate", "s", "", "Project start date in YYYY-MM-DD form, required by the monthday build policy")
	pinArg := flag.StringP("pin", "p", "", "Pin the whole version to this literal (e.g. 1.2.3.4), ignoring all policies")
	kindArg := flag.StringP("kind", "k", "assembly", "Attribute kind to update: assembly or file")
	encodingArg := flag.StringP("encoding", "e", "utf-8", "Text encoding of the input and output ("+strings.Join(sortedEncodingNames(), ", ")+")")
	quiet := flag.BoolP("quiet", "q", false, "Only log errors")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.Bool("help", false, "Show help message and exit")

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("updateversion CLI version", Version)
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Error: updateversion takes no positional arguments")
		usage()
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *quiet {
		logger = logger.Level(zerolog.ErrorLevel)
	}

	cfg, err := buildConfig(*buildArg, *revisionArg, *startDateArg, *pinArg, *kindArg)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	enc, err := fileio.ByName(*encodingArg)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	var text string
	if *input == "-" {
		text, err = fileio.ReadAll(os.Stdin, enc)
	} else {
		text, err = fileio.ReadFile(*input, enc)
	}
	if err != nil {
		logger.Error().Err(err).Str("input", *input).Msg("reading input failed")
		os.Exit(1)
	}

	res, err := updateversion.Apply(text, cfg, updateversion.SystemClock{})
	if err != nil {
		logger.Error().Err(err).Msg("version update failed")
		os.Exit(1)
	}
	if res.Matched {
		logger.Info().
			Stringer("old", res.Old).
			Stringer("new", res.New).
			Stringer("kind", cfg.Kind).
			Msg("version updated")
	} else {
		logger.Warn().Stringer("kind", cfg.Kind).Msg("no version attribute found; output left unchanged")
	}

	if *output == "-" {
		err = fileio.Write(os.Stdout, res.Output, enc)
	} else {
		err = fileio.WriteFile(*output, res.Output, enc)
	}
	if err != nil {
		logger.Error().Err(err).Str("output", *output).Msg("writing output failed")
		os.Exit(1)
	}
}

// buildConfig resolves the raw option strings into a validated policy
// configuration. All rejections here are configuration errors, reported
// before any text is scanned.
func buildConfig(buildArg, revisionArg, startDateArg, pinArg, kindArg string) (updateversion.Config, error) {
	var cfg updateversion.Config
	var err error

	if cfg.Build, err = updateversion.ParseBuildPolicy(buildArg); err != nil {
		return cfg, err
	}
	if cfg.Revision, err = updateversion.ParseRevisionPolicy(revisionArg); err != nil {
		return cfg, err
	}
	if cfg.Kind, err = updateversion.ParseAttributeKind(kindArg); err != nil {
		return cfg, err
	}

	if startDateArg != "" {
		start, parseErr := time.ParseInLocation("2006-01-02", startDateArg, time.Local)
		if parseErr != nil {
			return cfg, fmt.Errorf("%w: start date %q is not in YYYY-MM-DD form", updateversion.ErrInvalidConfig, startDateArg)
		}
		cfg.StartDate = updateversion.Some(start)
	}

	if pinArg != "" {
		pin, parseErr := updateversion.ParseVersion(pinArg)
		if parseErr != nil {
			return cfg, fmt.Errorf("%w: pin version %q is not a dotted four-part version", updateversion.ErrInvalidConfig, pinArg)
		}
		cfg.Pin = updateversion.Some(pin)
	}

	return cfg, nil
}

func sortedEncodingNames() []string {
	names := fileio.Names()
	sort.Strings(names)
	return names
}

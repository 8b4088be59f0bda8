package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	workload "github.com/hhkbp2/yabf-workload"
)

type MakePresetFunc func(recordCount, operationCount int64) workload.Workload

var (
	Commands = map[string]bool{
		"check":    true,
		"fmt":      true,
		"template": true,
		"preset":   true,
	}
	Presets = map[string]MakePresetFunc{
		"a": workload.PresetA,
		"b": workload.PresetB,
		"c": workload.PresetC,
		"d": workload.PresetD,
		"e": workload.PresetE,
		"f": workload.PresetF,
	}
	OptionPrefixes = []string{"--", "-"}
	OptionList     = []*Option{
		&Option{
			Name:            "P",
			HasArgument:     true,
			HasDefaultValue: false,
			Doc:             "read the workload from this file",
		},
		&Option{
			Name:            "f",
			HasArgument:     true,
			HasDefaultValue: true,
			DefaultValue:    "auto",
			Doc:             "input format: toml, properties or auto",
		},
		&Option{
			Name:            "o",
			HasArgument:     true,
			HasDefaultValue: false,
			Doc:             "write output to this file instead of stdout",
		},
		&Option{
			Name:            "records",
			HasArgument:     true,
			HasDefaultValue: true,
			DefaultValue:    "1000",
			Doc:             "record count for preset workloads",
		},
		&Option{
			Name:            "ops",
			HasArgument:     true,
			HasDefaultValue: true,
			DefaultValue:    "1000",
			Doc:             "operation count for preset workloads",
		},
		&Option{
			Name:            "v",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "enable debug logging",
		},
		&Option{
			Name:            "h",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "show this help message and exit",
		},
		&Option{
			Name:            "help",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "show this help message and exit",
		},
	}
	Options = make(map[string]*Option)

	ProgramName = ""
)

type Option struct {
	Name            string
	HasArgument     bool
	HasDefaultValue bool
	DefaultValue    string
	Doc             string
}

type Arguments struct {
	Command string
	Preset  string
	Options map[string]string
}

func Usage() {
	usageFormat := `usage: %s command [preset] [options]

Commands:
  check              Parse a workload file and report validation problems
  fmt                Rewrite a workload file in the canonical format
  template           Print the canonical document with every default
  preset             Print one of the core workloads a-f, or "all" to
                     write the whole family into a directory (-o)

Options:
  -P filename      : read the workload from this file
  -f format        : input format: toml, properties or auto (default: by
                     file extension, .properties means properties)
  -o destination   : write output to this file (for "preset all": this
                     directory) instead of stdout
  -records n       : record count for preset workloads (default 1000)
  -ops n           : operation count for preset workloads (default 1000)
  -v               : enable debug logging

positional arguments:
  {check,fmt,template,preset}   Command to run.
  {a,b,c,d,e,f,all}             Preset to emit (preset command only).

optional arguments:
  -h, --help         show this help message and exit`
	fmt.Fprintf(os.Stderr, usageFormat, ProgramName)
	fmt.Fprintln(os.Stderr)
}

func init() {
	ProgramName = filepath.Base(os.Args[0])

	// init options
	for i := 0; i < len(OptionList); i++ {
		o := OptionList[i]
		Options[o.Name] = o
	}
}

func ExitOnError(format string, args ...interface{}) {
	log.Errorf(format, args...)
	os.Exit(1)
}

func ParseArgs() *Arguments {
	if len(os.Args) <= 1 {
		ExitOnError("no enough argument")
	}

	index := 1
	firstArg := os.Args[index]
	if firstArg == "-h" || firstArg == "--help" {
		Usage()
		os.Exit(0)
	}
	index++

	command := firstArg
	_, ok := Commands[command]
	if !ok {
		ExitOnError("unsupported command: %s", command)
	}

	preset := ""
	if command == "preset" {
		if !(index < len(os.Args)) {
			ExitOnError("no preset given, expect one of a-f or all")
		}
		preset = os.Args[index]
		if _, ok := Presets[preset]; !ok && preset != "all" {
			ExitOnError("unsupported preset: %s", preset)
		}
		index++
	}

	// init options to be returned with default values
	opts := make(map[string]string)
	for name, opt := range Options {
		if opt.HasDefaultValue {
			opts[name] = opt.DefaultValue
		}
	}
	for i := index; i < len(os.Args); i++ {
		a := os.Args[i]
		for _, p := range OptionPrefixes {
			if strings.HasPrefix(a, p) {
				a = strings.TrimPrefix(a, p)
				break
			}
		}
		option, ok := Options[a]
		if !ok {
			ExitOnError("unknown option: %s", os.Args[i])
		}
		if option.HasArgument {
			i++
			if !(i < len(os.Args)) {
				ExitOnError("missing argument for option: %s", option.Name)
			}
			opts[option.Name] = os.Args[i]
		} else {
			switch option.Name {
			case "h", "help":
				Usage()
				os.Exit(0)
			default:
				opts[option.Name] = "true"
			}
		}
	}
	return &Arguments{
		Command: command,
		Preset:  preset,
		Options: opts,
	}
}

func configureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

// loadWorkload reads the -P file in the format chosen by -f. With the
// default "auto", a .properties extension selects the classic flat
// format and anything else the canonical one.
func loadWorkload(args *Arguments) workload.Workload {
	path, ok := args.Options["P"]
	if !ok {
		ExitOnError("no workload file given, use -P filename")
	}
	format := args.Options["f"]
	if format == "auto" {
		if filepath.Ext(path) == ".properties" {
			format = "properties"
		} else {
			format = "toml"
		}
	}
	log.Debugf("reading %s workload from %s", format, path)
	var w workload.Workload
	var err error
	switch format {
	case "toml":
		w, err = workload.ParseFile(path)
	case "properties":
		w, err = workload.LoadProperties(path)
	default:
		ExitOnError("unsupported format: %s", format)
	}
	if err != nil {
		ExitOnError("cannot load workload: %v", err)
	}
	return w
}

func emit(args *Arguments, w workload.Workload) {
	text, err := w.Marshal()
	if err != nil {
		ExitOnError("cannot serialize workload: %v", err)
	}
	dest, ok := args.Options["o"]
	if !ok {
		fmt.Print(text)
		return
	}
	if err := w.WriteFile(dest); err != nil {
		ExitOnError("%v", err)
	}
	log.Infof("wrote %s", dest)
}

func runCheck(args *Arguments) {
	w := loadWorkload(args)
	if err := w.Validate(); err != nil {
		if merr, ok := err.(*multierror.Error); ok {
			for _, e := range merr.Errors {
				log.Warnf("%v", e)
			}
			ExitOnError("workload failed validation with %d problem(s)", len(merr.Errors))
		}
		ExitOnError("workload failed validation: %v", err)
	}
	log.Infof("workload OK: %s, %d records, %d operations",
		w.Workload, w.RecordCount, w.OperationCount)
}

func runFmt(args *Arguments) {
	emit(args, loadWorkload(args))
}

func runTemplate(args *Arguments) {
	emit(args, workload.DefaultWorkload())
}

func presetSizes(args *Arguments) (int64, int64) {
	records, err := strconv.ParseInt(args.Options["records"], 10, 64)
	if err != nil {
		ExitOnError("invalid record count: %s", args.Options["records"])
	}
	ops, err := strconv.ParseInt(args.Options["ops"], 10, 64)
	if err != nil {
		ExitOnError("invalid operation count: %s", args.Options["ops"])
	}
	return records, ops
}

func runPreset(args *Arguments) {
	records, ops := presetSizes(args)
	if args.Preset != "all" {
		emit(args, Presets[args.Preset](records, ops))
		return
	}
	dir, ok := args.Options["o"]
	if !ok {
		ExitOnError("preset all needs a target directory, use -o directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		ExitOnError("cannot create %s: %v", dir, err)
	}
	files := map[string]workload.Workload{
		"workload_template.toml": workload.DefaultWorkload(),
	}
	for name, f := range Presets {
		files["workload"+name+".toml"] = f(records, ops)
	}
	for name, w := range files {
		path := filepath.Join(dir, name)
		if err := w.WriteFile(path); err != nil {
			ExitOnError("%v", err)
		}
		log.Infof("wrote %s", path)
	}
}

func main() {
	configureLogging()
	args := ParseArgs()
	if args.Options["v"] == "true" {
		log.SetLevel(log.DebugLevel)
	}
	switch args.Command {
	case "check":
		runCheck(args)
	case "fmt":
		runFmt(args)
	case "template":
		runTemplate(args)
	case "preset":
		runPreset(args)
	default:
		ExitOnError("invalid command: %s", args.Command)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"clove/internal/repl"
	"clove/internal/util"
)

var (
	// Version is the current version of the clove binary.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// logging
	logLevel string
	logFile  string
	// config vars
	configFile  string
	echoResults bool
	haltOnError bool
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	// evaluator config
	flag.StringVar(&configFile, "config", "", "Path to a TOML configuration file")
	flag.BoolVar(&echoResults, "echo", true, "Print the result of each top-level form")
	flag.BoolVar(&haltOnError, "halt-on-error", true, "Stop at the first failing top-level form")
	// log config
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {

	flag.Parse()

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	config := util.DefaultConfiguration()
	if configFile != "" {
		var err error
		config, err = util.LoadConfiguration(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	config.Version = Version
	config.BuildDate = BuildDate
	config.Commit = Commit
	config = flagOverrides(config, setFlags())

	// The logger is configured after the config file is merged so that
	// log_level/log_file from the file take effect when the corresponding
	// flags were not set.
	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevelFromString(config.LogLevel),
	}
	logWriter := configureLogWriter(config.LogFile)
	defaultLogger := slog.New(slog.NewJSONHandler(logWriter, loggerOptions))
	slog.SetDefault(defaultLogger)

	var in io.Reader = os.Stdin
	if fileName := flag.Arg(0); fileName != "" {
		fh, err := os.Open(fileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open '%s': %v\n", fileName, err)
			os.Exit(1)
		}
		defer fh.Close()
		in = fh
	}

	if err := repl.Run(in, os.Stdout, config); err != nil {
		slog.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// setFlags reports which flags were given explicitly on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// flagOverrides applies command line values over file settings for every
// flag the user set explicitly; unset flags leave the file values alone.
func flagOverrides(config util.Configuration, set map[string]bool) util.Configuration {
	if set["echo"] {
		config.EchoResults = echoResults
	}
	if set["halt-on-error"] {
		config.HaltOnError = haltOnError
	}
	if set["log-level"] {
		config.LogLevel = logLevel
	}
	if set["log-file"] {
		config.LogFile = logFile
	}
	return config
}

func configureLogWriter(logFile string) *os.File {
	var logWriter *os.File
	var err error
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for '%s': %v; falling back to stderr\n", logFile, err)
			return os.Stderr
		}
		logWriter, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", logFile, err)
			logWriter = os.Stderr
		}
	} else {
		logWriter = os.Stderr
	}
	return logWriter
}

func printVersion() {

	fmt.Printf("clove version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: clove [options] [filename]

Options:
  -config <path>     Path to a TOML configuration file.
  -echo              Print the result of each top-level form. Default is true.
  -halt-on-error     Stop at the first failing top-level form. Default is true.
  -help              Display this help information and exit.
  -version           Display version information and exit.
  -log-level <level> Set the log level: debug, info, warn, error. Default is 'error'.
  -log-file <path>   Specify a log file to write logs. Default is stderr.

Details:
clove evaluates a stream of JSON-encoded expression trees, read from the
given file or from stdin.

Examples:
  clove program.json            Evaluate the forms in the file
  clove -echo=false < in.json   Evaluate stdin, print only println output
  clove -log-level=debug        Start with debug logging enabled

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

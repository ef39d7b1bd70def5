package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/marcio-pessoa/kubectl-cp/console"
	"github.com/marcio-pessoa/kubectl-cp/kubectl"
	flag "github.com/spf13/pflag"
)

// Constants indicating return codes of this tool, when run from command line
const (
	exitCodeSuccess = iota
	exitCodeInvalidNumArgs
	exitCodeInvalidVerbosity
	exitCodeRunnerSetupError
	exitCodeCopyError
)

var flags struct {
	isHelp         func() bool
	isVersion      func() bool
	isRecursive    func() bool
	getVerbosity   func() console.Level
	getKubectlArgs func() string
}

func setupHelpOpt() {
	helpPtr := flag.BoolP("help", "h", false, "display help")
	flags.isHelp = func() bool {
		return *helpPtr
	}
}

func setupVersionOpt() {
	versionPtr := flag.BoolP("version", "V", false, "display version and release date")
	flags.isVersion = func() bool {
		return *versionPtr
	}
}

func setupRecursiveOpt() {
	recursivePtr := flag.BoolP("recursive", "r", false, "copy directories recursively")
	flags.isRecursive = func() bool {
		return *recursivePtr
	}
}

func setupVerbosityOpt() {
	const verbosityFlag = "verbosity"
	verbosityPtr := flag.StringP(verbosityFlag, "v", "error",
		fmt.Sprintf("diagnostics verbosity (one of: %s)", strings.Join(console.LevelNames, ", ")))
	flags.getVerbosity = func() console.Level {
		level, err := console.ParseLevel(*verbosityPtr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: argument to flag --%s is invalid: %v\n", verbosityFlag, err)
			flag.Usage()
			os.Exit(exitCodeInvalidVerbosity)
		}
		return level
	}
}

func setupKubectlArgsOpt() {
	argsPtr := flag.StringP("arguments", "a", "",
		"extra arguments forwarded to every kubectl exec invocation\n"+
			"(e.g. \"-n production -c sidecar\")")
	flags.getKubectlArgs = func() string {
		return *argsPtr
	}
}

func setupUsage() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Run \"%s --help\" for usage\n", programName)
	}
}

func showHelpAndExit() {
	flag.CommandLine.SetOutput(os.Stdout)
	fmt.Printf(`%s copies files and directories between the local machine and a running
container, using nothing but the kubectl exec channel. No agent, volume or
server-side helper is needed inside the container; the only remote
requirements are a POSIX shell, cat, tee, find and mkdir.

Usage:
	 %s <flags> [source] [destination]

where exactly one of source and destination is qualified as target:path
(the remote side) and the other is a plain local path. For example:

	 %s my-pod:/var/log/app.log .
	 %s -r ./config my-pod:/etc/app

flags: (all optional)
`, programName, programName, programName, programName)
	flag.PrintDefaults()
	os.Exit(exitCodeSuccess)
}

func showVersionAndExit() {
	fmt.Printf("%s %s (%s)\n", programName, programVersion, programDate)
	os.Exit(exitCodeSuccess)
}

func handlePanic() {
	err := recover()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Program exited unexpectedly. "+
			"Please report the below error to the author:\n"+
			"%+v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, string(debug.Stack()))
	}
}

func setupFlags() {
	setupHelpOpt()
	setupVersionOpt()
	setupRecursiveOpt()
	setupVerbosityOpt()
	setupKubectlArgsOpt()
	setupUsage()
}

func main() {
	defer handlePanic()
	setupFlags()
	flag.Parse()
	if flags.isHelp() {
		showHelpAndExit()
	}
	if flags.isVersion() {
		showVersionAndExit()
	}
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "error: two arguments expected: source and destination "+
			"(exactly one of them as target:path)")
		flag.Usage()
		os.Exit(exitCodeInvalidNumArgs)
	}
	con := console.Default(flags.getVerbosity())
	runner, runnerErr := kubectl.NewRunner(flags.getKubectlArgs(), con)
	if runnerErr != nil {
		con.Errorf("%v\n", runnerErr)
		os.Exit(exitCodeRunnerSetupError)
	}
	copyErr := runCopy(context.Background(), runner, con,
		flag.Arg(0), flag.Arg(1), flags.getKubectlArgs(), flags.isRecursive())
	if copyErr != nil {
		con.Errorf("%v\n", copyErr)
		os.Exit(exitCodeCopyError)
	}
}

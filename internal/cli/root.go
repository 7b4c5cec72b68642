// Package cli implements the chemicals command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/chemicals/internal/paths"
	"github.com/mesh-intelligence/chemicals/internal/sqlite"
	"github.com/mesh-intelligence/chemicals/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error returned by a
// subcommand. Errors without one exit with exitUserError, which covers
// cobra's own argument and flag errors.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by one invocation of the root command.
type app struct {
	flags  rootFlags
	config *viper.Viper
	logger *zap.SugaredLogger
}

// NewRootCmd creates the top-level "chemicals" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "chemicals",
		Short: "Manage laboratory chemical records",
		Long: "Chemicals stores chemicals, inventory lots, components, hazards,\n" +
			"precautions, pictograms and manufacturers as typed records.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = a.logger.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.chemicals-db)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newTablesCmd(a),
		newFieldsCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)
	return root
}

// Execute runs the root command against the process arguments and exits
// with the resulting code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return exitCode(err)
}

// setup loads configuration and builds the logger before any subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.config, err = loadConfig(configDir)
	if err != nil {
		return userError(err)
	}
	a.logger, err = newLogger(cmd.ErrOrStderr(), a.config.GetString(cfgKeyLogLevel), a.flags.verbose)
	if err != nil {
		return userError(err)
	}
	return nil
}

// newLogger writes JSON logs at the configured level, or human-readable
// console logs at debug level when verbose is set.
func newLogger(w io.Writer, level string, verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		return zap.New(core, zap.AddCaller()).Sugar(), nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgKeyLogLevel, err)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core).Sugar(), nil
}

func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
}

// attach opens the configured backend. The caller must Detach it.
func (a *app) attach() (*sqlite.Backend, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	cfg := types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, userError(err)
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(a.logger))
	if err := backend.Attach(cfg); err != nil {
		return nil, sysError(fmt.Errorf("attach backend: %w", err))
	}
	return backend, nil
}

// withTable attaches the backend, resolves the named table and its record
// type, runs fn, and detaches.
func (a *app) withTable(name string, fn func(rt types.RecordType, tbl types.Table) error) error {
	rt, err := types.LookupRecordType(name)
	if err != nil {
		return userError(fmt.Errorf("unknown table %q (valid: %s)", name, tableList()))
	}

	backend, err := a.attach()
	if err != nil {
		return err
	}
	defer backend.Detach()

	tbl, err := backend.GetTable(name)
	if err != nil {
		return sysError(err)
	}
	return fn(rt, tbl)
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/chemicals/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and storage",
		Long: "Write config.yaml if it is missing, then create the data directory\n" +
			"with one empty JSONL file per table.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(err)
	}

	cfg := configFile{
		Backend:  a.config.GetString(cfgKeyBackend),
		DataDir:  a.flags.dataDir,
		LogLevel: a.config.GetString(cfgKeyLogLevel),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = a.config.GetString(cfgKeyDataDir)
	}
	if cfg.DataDir != "" {
		if cfg.DataDir, err = filepath.Abs(cfg.DataDir); err != nil {
			return sysError(err)
		}
	}

	configPath := filepath.Join(configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, cfg)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if created {
		a.logger.Infow("config written", "path", configPath)
	}

	backend, err := a.attach()
	if err != nil {
		return err
	}
	if err := backend.Detach(); err != nil {
		return sysError(fmt.Errorf("finalize storage: %w", err))
	}

	dataDir, _ := a.dataDir()
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized chemicals store in %s\n", dataDir)
	return nil
}

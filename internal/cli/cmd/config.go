package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the resolved configuration, create a default config file, or dump the schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long:  `Show the configuration after defaults, the config file and environment variables are merged.`,
	RunE:  runConfigShow,
}

var (
	configInitForce bool

	// configInitCmd runs without app context so that a broken config file
	// can be replaced.
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long:  `Write the default configuration to the XDG config directory, with a JSON schema next to it.`,
		RunE:  runConfigInit,
	}
)

var (
	configSchemaWrite bool

	configSchemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Dump the configuration JSON schema",
		Long:  `Print the JSON schema for the config file, for editor completion and validation.`,
		RunE:  runConfigSchema,
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVar(&configSchemaWrite, "write", false, "write the schema next to the config file")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.ConfigFile()
	exists := path != ""
	if !exists {
		// Defaults only; show where init would put the file.
		if p, err := config.GetConfigFile(); err == nil {
			path = p
		}
	}

	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderConfigPath(path, exists))

	data, err := config.MarshalTOML(app.Config)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	if err := config.GenerateSchemaFile(); err != nil {
		return err
	}

	fmt.Println(styles.NewConfigRenderer(styles.NewTheme()).RenderInitSuccess(path))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaWrite {
		if err := config.GenerateSchemaFile(); err != nil {
			return err
		}
		configDir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		schemaFile := filepath.Join(configDir, "config.schema.json")
		fmt.Println(styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(schemaFile))
		return nil
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

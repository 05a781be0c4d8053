package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app       = "resume-import"
	envPrefix = "RESUME_IMPORT"
)

type Config struct {
	Parser *ParserConfig `mapstructure:"parser"`
	Import *ImportConfig `mapstructure:"import"`
}

type ParserConfig struct {
	StrictHeaders bool `mapstructure:"strict-headers"`
}

type ImportConfig struct {
	Into            string `mapstructure:"into"`
	Output          string `mapstructure:"output"`
	Format          string `mapstructure:"format"`
	AutoApprove     bool   `mapstructure:"auto-approve"`
	PDFPreserveRows bool   `mapstructure:"pdf-preserve-rows"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-import turns resume files and pasted text into structured resume records",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-import.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Bool("strict-headers", false, "only treat short capitalised lines as section headers")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("parser.strict-headers", rootCmd.PersistentFlags().Lookup("strict-headers"))

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless given explicitly.
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (cfgFile != "" || !errors.As(err, &notFound)) {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	config := &Config{
		Parser: &ParserConfig{},
		Import: &ImportConfig{},
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	return config, nil
}

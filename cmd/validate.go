package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-import/internal/importer"
	"github.com/spigell/resume-import/internal/logger"
	"github.com/spigell/resume-import/internal/resume"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Check that a JSON file has the shape of a full resume export",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runValidate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading file", zap.Error(err), zap.String("file", path))
	}

	if !resume.ValidateJSON(raw) {
		logger.Fatal(importer.ErrInvalidResumeData.Error(), zap.String("file", path))
	}

	logger.Info("resume is valid", zap.String("file", path))
}

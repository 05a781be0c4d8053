package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-import/internal/export"
	"github.com/spigell/resume-import/internal/extract"
	"github.com/spigell/resume-import/internal/importer"
	"github.com/spigell/resume-import/internal/input"
	"github.com/spigell/resume-import/internal/logger"
	"github.com/spigell/resume-import/internal/resume"
	"github.com/spigell/resume-import/internal/textparser"
)

const (
	PromptYes        = "Yes"
	PromptNo         = "No"
	PromptShowResult = "Show merged resume"
	PromptDumpToFile = "Dump merged resume to file"

	parseFailedHint = "could not parse the file, please check the format"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Save the imported resume?",
	Items: []string{PromptYes, PromptNo, PromptShowResult, PromptDumpToFile},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a resume file (pdf, docx, txt, json) or pasted text from stdin",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runImport(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("into", "", "existing resume JSON to merge into; created when missing")
	importCmd.Flags().StringP("output", "o", "", "where to write the result, \"-\" for stdout (default: the --into file, else stdout for json and First_Last_Resume.txt for txt)")
	importCmd.Flags().StringP("format", "f", formatJSON, "output format: json or txt")
	importCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before saving")
	importCmd.Flags().Bool("pdf-preserve-rows", false, "keep PDF text rows on separate lines")

	viper.BindPFlag("import.into", importCmd.Flags().Lookup("into"))
	viper.BindPFlag("import.output", importCmd.Flags().Lookup("output"))
	viper.BindPFlag("import.format", importCmd.Flags().Lookup("format"))
	viper.BindPFlag("import.auto-approve", importCmd.Flags().Lookup("yes"))
	viper.BindPFlag("import.pdf-preserve-rows", importCmd.Flags().Lookup("pdf-preserve-rows"))
}

func runImport(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the import", zap.String("version", version), zap.Any("config", config))

	if err := checkOutputFormat(config.Import.Format); err != nil {
		logger.Fatal("checking output format", zap.Error(err))
	}

	src := input.Source{Stdin: cmd.InOrStdin()}
	if len(args) > 0 {
		src.Path = args[0]
	}

	content, err := input.Load(src)
	if err != nil {
		logger.Fatal("reading input", zap.Error(err))
	}

	imp := newImporter(logger, config)

	result, err := imp.Import(ctx, content)
	if err != nil {
		logger.Fatal("importing resume",
			zap.Error(err),
			zap.String("hint", importHint(err)),
		)
	}

	if result.Partial {
		logger.Warn("resume imported partially",
			zap.String("name", result.Data.PersonalInfo.FullName()),
			zap.String("hint", "only contact details, summary, skills and interests are recognised in text; review the rest manually"),
		)
	}

	existing, err := loadExisting(config.Import.Into)
	if err != nil {
		logger.Fatal("loading existing resume", zap.Error(err), zap.String("file", config.Import.Into))
	}
	merged := resume.Merge(existing, result.Data)

	// promptui reads the terminal from stdin, which is already consumed.
	autoApprove := config.Import.AutoApprove || src.FromStdin()

	action := PromptYes
	for {
		if !autoApprove {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(action, cmd, logger, config, merged); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, cmd *cobra.Command, logger *zap.Logger, config *Config, merged *resume.Data) error {
	switch action {
	case PromptYes:
		target := outputTarget(config.Import, merged)
		if err := writeRecord(cmd.OutOrStdout(), target, config.Import.Format, merged); err != nil {
			return fmt.Errorf("saving resume: %w", err)
		}
		logger.Info("resume saved",
			zap.String("output", displayTarget(target)),
			zap.String("format", config.Import.Format),
			zap.Any("counts", merged.Counts()),
		)
		return errExit
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptShowResult:
		if config.Import.Format == formatText {
			logger.Info(export.Text(merged), zap.String("name", merged.PersonalInfo.FullName()))
			return nil
		}
		pretty, _ := json.MarshalIndent(merged, "", "  ")
		logger.Info(string(pretty), zap.String("name", merged.PersonalInfo.FullName()))
		return nil
	case PromptDumpToFile:
		filename, err := merged.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump resume to file: %w", err)
		}
		logger.Info("dumping resume to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// newRegistry returns the built-in extractors, with the PDF one adjusted to
// the configured row handling.
func newRegistry(config *Config) *extract.Registry {
	registry := extract.NewRegistry()
	if config.Import.PDFPreserveRows {
		registry.Register(&extract.PDFExtractor{PreserveRows: true})
	}
	return registry
}

func newImporter(logger *zap.Logger, config *Config) *importer.Importer {
	return importer.New(logger, newRegistry(config), textparser.Options{
		StrictHeaders: config.Parser.StrictHeaders,
	})
}

// loadExisting returns the record to merge into. A missing file starts from an
// empty record.
func loadExisting(path string) (*resume.Data, error) {
	if path == "" {
		return resume.New(), nil
	}

	existing, err := resume.LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return resume.New(), nil
	}
	return existing, err
}

func importHint(err error) string {
	switch {
	case errors.Is(err, importer.ErrEmptyContent):
		return "the input is empty"
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return "supported formats are pdf, docx, txt and json"
	default:
		return parseFailedHint
	}
}

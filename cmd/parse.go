package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-import/internal/extract"
	"github.com/spigell/resume-import/internal/importer"
	"github.com/spigell/resume-import/internal/input"
	"github.com/spigell/resume-import/internal/logger"
	"github.com/spigell/resume-import/internal/textparser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Run the text parser on a file or stdin and print the partial record as JSON",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runParse(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// runParse skips JSON detection: every input goes through extraction and the
// heuristic parser, which is useful to see what the parser recognises.
func runParse(cmd *cobra.Command, args []string) {
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

	src := input.Source{Stdin: cmd.InOrStdin()}
	if len(args) > 0 {
		src.Path = args[0]
	}

	content, err := input.Load(src)
	if err != nil {
		logger.Fatal("reading input", zap.Error(err))
	}

	format := extract.FormatFromName(content.Name)
	if content.Pasted || format == "" {
		format = importer.Sniff(content.Data)
	}
	if format == importer.FormatJSON {
		format = extract.FormatText
	}

	extractor, err := extract.NewRegistry().Get(format)
	if err != nil {
		logger.Fatal("choosing an extractor", zap.Error(err), zap.String("hint", "supported formats are pdf, docx and txt"))
	}

	text, err := extractor.Extract(ctx, content.Data)
	if err != nil {
		logger.Fatal("extracting text", zap.Error(err), zap.String("hint", parseFailedHint))
	}

	data := textparser.ParseWithOptions(text, textparser.Options{StrictHeaders: config.Parser.StrictHeaders})
	logger.Debug("text parsed", zap.String("format", format), zap.Any("counts", data.Counts()))

	if err := writeRecord(cmd.OutOrStdout(), "", formatJSON, data); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/ai/gemini"
	"github.com/spigell/interview-agent/internal/interview"
	"github.com/spigell/interview-agent/internal/keywords"
	"github.com/spigell/interview-agent/internal/logger"
	"github.com/spigell/interview-agent/internal/questions"
	"github.com/spigell/interview-agent/internal/voice"
)

const (
	PromptYes                 = "Yes"
	PromptNo                  = "No"
	PromptShowQuestions       = "Show questions"
	PromptQuestionsToFile     = "Dump questions to file"
	PromptAppendToExcludeFile = "Append keywords to exclude file"
)

var errExit = errors.New("exit requested")

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Generate questions and interview the candidate",
	Run: func(cmd *cobra.Command, _ []string) {
		runInterview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().BoolP("auto-approve", "y", false, "start the interview without asking for confirmation")
	interviewCmd.Flags().StringP("transcript", "t", "", "file to write the transcript to")
	interviewCmd.Flags().Bool("voice", false, "answer by voice recordings instead of typing")

	viper.BindPFlag("transcript", interviewCmd.Flags().Lookup("transcript"))
	viper.BindPFlag("voice.enabled", interviewCmd.Flags().Lookup("voice"))
}

func runInterview(cmd *cobra.Command) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-agent", zap.String("version", resolveVersion()))
	logger.Debug("starting with config", zap.Any("config", config))

	result, err := generateQuestions(ctx, config, logger)
	if err != nil {
		logger.Fatal("generating questions", zap.Error(err))
	}

	channel, err := newChannel(ctx, config, logger)
	if err != nil {
		logger.Fatal("preparing the response channel", zap.Error(err))
	}

	items := []string{PromptYes, PromptNo, PromptShowQuestions, PromptQuestionsToFile}
	if config.ExcludeFile != "" {
		items = append(items, PromptAppendToExcludeFile)
	}

	prompt := promptui.Select{
		Label: "Start the interview?",
		Items: items,
	}

	action := PromptYes
	for {
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of questions", zap.Int("count", result.Questions.Len()))

		if err := handleAction(ctx, action, channel, logger, config, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, channel interview.Channel, logger *zap.Logger, config *Config, result *questions.Result) error {
	switch action {
	case PromptYes:
		if err := conduct(ctx, channel, logger, config, result.Questions); err != nil {
			return err
		}
		return errExit
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptShowQuestions:
		for i, question := range result.Questions {
			fmt.Printf("%d. %s\n", i+1, question)
		}
		return nil
	case PromptQuestionsToFile:
		filename, err := result.Questions.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump questions to file: %w", err)
		}
		logger.Info("dumping questions to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return excludeKeywords(logger, config, result)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func conduct(ctx context.Context, channel interview.Channel, logger *zap.Logger, config *Config, list questions.List) error {
	agent := interview.New(list, logger)

	responses, err := agent.Conduct(ctx, channel, config.Transcript)
	if err != nil {
		return fmt.Errorf("conducting interview: %w", err)
	}

	fmt.Println("All Responses Recorded:")
	for i, response := range responses {
		fmt.Printf("%d. %s\n", i+1, response)
	}

	logger.Info("transcript saved", zap.String("filename", config.Transcript))
	return nil
}

// excludeKeywords stores the current keywords in the exclude file and drops
// their questions so only the title and core value questions remain.
func excludeKeywords(logger *zap.Logger, config *Config, result *questions.Result) error {
	excluded, err := keywords.GetExcludedFromFile(config.ExcludeFile)
	if err != nil {
		return err
	}

	excluded.Append(keywords.ToExcluded(result.Keywords))

	if err := excluded.ToFile(config.ExcludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file",
		zap.String("filename", config.ExcludeFile),
		zap.Strings("keywords", result.Keywords),
	)

	kept, _ := excluded.Filter(result.Keywords)
	result.Keywords = kept
	result.Questions = questions.Synthesize(kept, result.JobTitle, result.CoreValues, config.Context, newRand(config.Seed))

	return nil
}

// newChannel picks typed answers or replayed voice recordings.
func newChannel(ctx context.Context, config *Config, log *zap.Logger) (interview.Channel, error) {
	if config.Voice == nil || !config.Voice.Enabled {
		return interview.NewTerminalChannel(os.Stdout), nil
	}

	source, err := voice.NewDirSource(config.Voice.AudioDir, config.Voice.MIMEType)
	if err != nil {
		return nil, err
	}

	cfg := geminiConfig(config)

	generator, err := newGeminiGenerator(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("building transcriber: %w", err)
	}

	voiceLogger := logger.WithProvider(log, "gemini", generator.Model())

	log.Info("answers are read from audio recordings",
		zap.String("dir", config.Voice.AudioDir),
		zap.Int("clips", source.Len()),
		zap.String("mime_type", strings.TrimSpace(config.Voice.MIMEType)),
	)

	listener := voice.NewTranscribingListener(source, gemini.NewTranscriber(generator, voiceLogger), voiceLogger)

	return voice.NewChannel(voice.NewWriterSpeaker(os.Stdout), listener, config.Voice.MaxRetries, voiceLogger), nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions from the documents and print them",
	Run: func(cmd *cobra.Command, _ []string) {
		printQuestions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().Bool("dump", false, "also dump the questions to a temporary json file")
}

func printQuestions(cmd *cobra.Command) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	result, err := generateQuestions(ctx, config, logger)
	if err != nil {
		logger.Fatal("generating questions", zap.Error(err))
	}

	logger.Debug("keyword filters applied",
		zap.Any("steps", result.Filters),
		zap.Int("dropped", result.Filters.Dropped()),
		zap.Strings("keywords", result.Keywords),
	)

	for i, question := range result.Questions {
		fmt.Printf("%d. %s\n", i+1, question)
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		filename, err := result.Questions.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dumping questions", zap.Error(err))
		}
		logger.Info("dumping questions to file", zap.String("filename", filename))
	}
}

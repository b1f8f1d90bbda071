package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/ai/gemini"
	"github.com/spigell/interview-agent/internal/keywords"
	"github.com/spigell/interview-agent/internal/logger"
	"github.com/spigell/interview-agent/internal/questions"
	"github.com/spigell/interview-agent/internal/voice"
)

const (
	app = "interview-agent"
)

type Config struct {
	DocumentsDir    string          `mapstructure:"documents-dir" validate:"required"`
	Transcript      string          `mapstructure:"transcript" validate:"required"`
	Context         string          `mapstructure:"context"`
	Threshold       float64         `mapstructure:"threshold" validate:"gt=0,lte=1"`
	Seed            uint64          `mapstructure:"seed"`
	ExcludeFile     string          `mapstructure:"exclude-file"`
	DisabledFilters []string        `mapstructure:"disabled-filters" validate:"dive,oneof=resume_overlap exclude_file similar"`
	Keywords        *KeywordsConfig `mapstructure:"keywords"`
	Analyzer        *AnalyzerConfig `mapstructure:"analyzer" validate:"required"`
	Voice           *VoiceConfig    `mapstructure:"voice"`
}

type KeywordsConfig struct {
	EntityLabels   []string `mapstructure:"entity-labels"`
	TechnicalTerms []string `mapstructure:"technical-terms"`
}

type AnalyzerConfig struct {
	Provider string         `mapstructure:"provider" validate:"oneof=lexical gemini"`
	Lexical  *LexicalConfig `mapstructure:"lexical"`
	Gemini   *GeminiConfig  `mapstructure:"gemini"`
}

type LexicalConfig struct {
	// Gazetteer adds names per entity label on top of the built-in lists.
	Gazetteer map[string][]string `mapstructure:"gazetteer"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries" validate:"gte=0"`
	MaxLogLength int    `mapstructure:"max-log-length" validate:"gte=0"`
}

type VoiceConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	AudioDir   string `mapstructure:"audio-dir" validate:"required_if=Enabled true"`
	MIMEType   string `mapstructure:"mime-type"`
	MaxRetries int    `mapstructure:"max-retries" validate:"gte=0"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-agent generates interview questions from a job post and a resume and runs the interview",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("analyzer.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-agent.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("documents-dir", "", "directory with job_post.txt, company_profile.txt and candidate_resume.txt")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for question order (0 picks a random order)")
	rootCmd.PersistentFlags().StringP("exclude-file", "e", "", "json file with keywords to exclude. Default is unset.")

	for _, name := range []string{"debug", "json", "log-file", "documents-dir", "seed", "exclude-file"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func setDefaults() {
	viper.SetDefault("documents-dir", "data")
	viper.SetDefault("transcript", "interview_responses.txt")
	viper.SetDefault("context", questions.DefaultContext)
	viper.SetDefault("threshold", keywords.DefaultThreshold)
	viper.SetDefault("keywords.entity-labels", keywords.DefaultEntityLabels)
	viper.SetDefault("keywords.technical-terms", keywords.DefaultTechnicalTerms)
	viper.SetDefault("analyzer.provider", "lexical")
	viper.SetDefault("analyzer.gemini.model", gemini.DefaultModel)
	viper.SetDefault("analyzer.gemini.max-retries", gemini.DefaultMaxRetries)
	viper.SetDefault("analyzer.gemini.max-log-length", 500)
	viper.SetDefault("voice.max-retries", voice.DefaultMaxRetries)
}

func initConfig() {
	// A local .env may carry GEMINI_API_KEY or GEMINI_API_KEY_FILE.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Defaults are enough to run; only an explicit or broken config is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		return nil, errors.New("config is empty")
	}

	if config.Analyzer != nil {
		config.Analyzer.Provider = strings.ToLower(strings.TrimSpace(config.Analyzer.Provider))
	}

	if err := validator.New().Struct(config); err != nil {
		return config, fmt.Errorf("validating config: %w", err)
	}

	return config, nil
}

func newLogger() *zap.Logger {
	var outputs []string
	if path := strings.TrimSpace(viper.GetString("log-file")); path != "" {
		outputs = append(outputs, path)
	}

	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), outputs...)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

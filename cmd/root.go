package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cv-screener"
)

type Config struct {
	// Input is a directory of CV files or a ZIP archive of them.
	Input      string         `mapstructure:"input"`
	Skills     []string       `mapstructure:"skills"`
	StatusFile string         `mapstructure:"status-file"`
	Filters    *FiltersConfig `mapstructure:"filters"`
	Export     *ExportConfig  `mapstructure:"export"`
}

type FiltersConfig struct {
	Skills     bool `mapstructure:"skills"`
	English    bool `mapstructure:"english"`
	Experience bool `mapstructure:"experience"`
	Transport  bool `mapstructure:"transport"`
	Car        bool `mapstructure:"car"`

	MinEnglishLevel     string `mapstructure:"min-english-level"`
	MinExperience       int    `mapstructure:"min-experience"`
	MaxCommuteTransport int    `mapstructure:"max-commute-transport"`
	MaxCommuteCar       int    `mapstructure:"max-commute-car"`
	Badge               string `mapstructure:"badge"`
}

type ExportConfig struct {
	SelectedCSV string   `mapstructure:"selected-csv"`
	RejectedZip string   `mapstructure:"rejected-zip"`
	Columns     []string `mapstructure:"columns"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-screener ingests a batch of CVs, scores them against the agency's criteria and helps sort the applications",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("status-file", "CV_SCREENER_STATUS_FILE"); err != nil {
		log.Fatalf("binding CV_SCREENER_STATUS_FILE environment variable: %v", err)
	}

	viper.SetDefault("filters.min-english-level", "B1")
	viper.SetDefault("filters.min-experience", 2)
	viper.SetDefault("filters.max-commute-transport", 45)
	viper.SetDefault("filters.max-commute-car", 60)
	viper.SetDefault("filters.badge", "all")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/export"
	"github.com/rhtools/cv-screener/internal/filtering"
	"github.com/rhtools/cv-screener/internal/ingest"
	"github.com/rhtools/cv-screener/internal/logger"
)

const (
	PromptSummary       = "Show summary"
	PromptReview        = "Review a candidate"
	PromptResetStatuses = "Reset all statuses to pending"
	PromptExportCSV     = "Export selected candidates to CSV"
	PromptExportZip     = "Export rejected CVs to ZIP"
	PromptDumpToFile    = "Dump candidates to file"
	PromptQuit          = "Save and quit"
	PromptBack          = "back"

	defaultSelectedCSV = "selected.csv"
	defaultRejectedZip = "rejected_cvs.zip"

	detailLogLimit = 120
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{
		PromptSummary,
		PromptReview,
		PromptResetStatuses,
		PromptExportCSV,
		PromptExportZip,
		PromptDumpToFile,
		PromptQuit,
	},
}

var statusPrompt = promptui.Select{
	Label: "New status",
	Items: []string{
		string(candidate.StatusSelected),
		string(candidate.StatusRejected),
		string(candidate.StatusPending),
		PromptBack,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cv-screener main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("non-interactive", "n", false, "filter, report and export without prompting")
	runCmd.Flags().StringP("status-file", "s", "", "file remembering review statuses between runs. Default is unset.")

	viper.BindPFlag("status-file", runCmd.Flags().Lookup("status-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-screener", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Input == "" {
		logger.Fatal("an input directory or zip archive is required under the input key")
	}

	if config.Filters == nil {
		config.Filters = &FiltersConfig{}
	}

	candidates, err := ingest.FromPath(config.Input, logger)
	if err != nil {
		logger.Fatal("loading candidates", zap.Error(err))
	}

	if candidates.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no CV files found"))
		return
	}

	statusPath := resolveStatusPath(config)
	statuses := &candidate.Statuses{}
	if statusPath != "" {
		statuses, err = candidate.LoadStatuses(statusPath)
		if err != nil {
			logger.Fatal("loading status file", zap.String("path", statusPath), zap.Error(err))
		}
		logger.Info("loaded review statuses",
			zap.String("path", statusPath),
			zap.Int("count", len(statuses.Items)),
		)
	}

	fcfg := &filtering.Config{
		Skills:              config.Skills,
		MinEnglishLevel:     config.Filters.MinEnglishLevel,
		MinExperience:       config.Filters.MinExperience,
		MaxCommuteTransport: config.Filters.MaxCommuteTransport,
		MaxCommuteCar:       config.Filters.MaxCommuteCar,
		Badge:               config.Filters.Badge,
	}

	steps := filtering.Steps(
		config.Filters.Skills,
		config.Filters.English,
		config.Filters.Experience,
		config.Filters.Transport,
		config.Filters.Car,
	)

	for _, status := range filtering.Describe(steps) {
		logger.Debug("filter configured",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.Any("details", status.Details),
		)
	}

	filtered, err := filtering.Run(ctx, fcfg, filtering.Deps{Logger: logger}, steps, candidates)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if filtered.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	statuses.Apply(filtered)

	logger.Info("filtering complete",
		zap.Int("loaded", candidates.Len()),
		zap.Int("left", filtered.Len()),
	)

	if cmd.Flag("non-interactive").Value.String() == "true" {
		logSummary(logger, filtered)
		if err := runExports(logger, config, filtered); err != nil {
			logger.Fatal("exporting results", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, filtered, statuses, statusPath); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, filtered *candidate.Candidates, statuses *candidate.Statuses, statusPath string) error {
	switch action {
	case PromptSummary:
		logSummary(logger, filtered)
		return nil
	case PromptReview:
		return reviewCandidate(logger, filtered, statuses, statusPath)
	case PromptResetStatuses:
		for _, item := range filtered.Items {
			item.Status = candidate.StatusPending
		}
		logger.Info("all statuses reset", zap.Int("count", filtered.Len()))
		return saveStatuses(logger, filtered, statuses, statusPath)
	case PromptExportCSV:
		return exportSelected(logger, config, filtered)
	case PromptExportZip:
		return exportRejected(logger, config, filtered)
	case PromptDumpToFile:
		filename, err := filtered.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptQuit:
		if err := saveStatuses(logger, filtered, statuses, statusPath); err != nil {
			return err
		}
		logger.Info("exiting", zap.String("reason", "quit requested"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func reviewCandidate(zlog *zap.Logger, filtered *candidate.Candidates, statuses *candidate.Statuses, statusPath string) error {
	for {
		items := make([]string, 0, filtered.Len()+1)
		for _, item := range filtered.Items {
			label := fmt.Sprintf("%s / score %d / %s / %s / %s",
				item.Name, item.Score, item.EnglishBadge.Label, item.CommuteDisplay, item.Status,
			)
			items = append(items, label)
		}

		candidatePrompt := promptui.Select{
			Label: "Choose a candidate and press ENTER",
			Items: append(items, PromptBack),
			Size:  10,
		}

		_, selected, err := candidatePrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		name := strings.SplitN(selected, " /", 2)[0]
		item := filtered.FindByName(name)
		if item == nil {
			return fmt.Errorf("there is no such candidate %s", name)
		}

		zlog.Info("candidate details", logger.StringFields(
			logger.StringField{Key: "candidate", Value: item.Name},
			logger.StringField{Key: "english", Value: item.EnglishLevel},
			logger.StringField{Key: "experience_types", Value: item.ExperienceTypes},
			logger.StringField{Key: "experience_detail", Value: logger.TruncateForLog(item.ExperienceDetail, detailLogLimit)},
			logger.StringField{Key: "location", Value: item.Location},
			logger.StringField{Key: "commute", Value: item.CommuteDisplay},
		)...)

		_, status, err := statusPrompt.Run()
		if err != nil {
			return err
		}

		if status == PromptBack {
			continue
		}

		item.Status = candidate.Status(status)
		statuses.Record(item.Name, item.Status)
		if statusPath != "" {
			if err := statuses.ToFile(statusPath); err != nil {
				return fmt.Errorf("saving status file: %w", err)
			}
		}

		zlog.Info("status updated",
			zap.String("candidate", item.Name),
			zap.String("status", string(item.Status)),
		)
	}
}

func logSummary(logger *zap.Logger, filtered *candidate.Candidates) {
	summary := filtered.Summarize()

	locations := make([]string, 0, len(summary.TopLocations))
	for _, lc := range summary.TopLocations {
		locations = append(locations, fmt.Sprintf("%s (%d)", lc.Location, lc.Count))
	}

	logger.Info("screening summary",
		zap.Int("total", summary.Total),
		zap.Int("selected", summary.Selected),
		zap.Int("rejected", summary.Rejected),
		zap.Int("pending", summary.Pending),
		zap.Float64("mean_score", summary.MeanScore),
		zap.Strings("top_locations", locations),
		zap.Int("badge_green", summary.Badges[candidate.BadgeLeveled]),
		zap.Int("badge_yellow", summary.Badges[candidate.BadgeMentioned]),
		zap.Int("badge_red", summary.Badges[candidate.BadgeUnspecified]),
	)
}

func runExports(logger *zap.Logger, config *Config, filtered *candidate.Candidates) error {
	if err := exportSelected(logger, config, filtered); err != nil {
		return err
	}
	return exportRejected(logger, config, filtered)
}

func exportSelected(logger *zap.Logger, config *Config, filtered *candidate.Candidates) error {
	path := defaultSelectedCSV
	var columns []string
	if config.Export != nil {
		if config.Export.SelectedCSV != "" {
			path = config.Export.SelectedCSV
		}
		columns = config.Export.Columns
	}

	selected := &candidate.Candidates{Items: filtered.WithStatus(candidate.StatusSelected)}
	if err := export.CSVFile(path, selected, columns); err != nil {
		return fmt.Errorf("exporting selected candidates: %w", err)
	}

	logger.Info("exported selected candidates",
		zap.String("path", path),
		zap.Int("count", selected.Len()),
	)
	return nil
}

func exportRejected(logger *zap.Logger, config *Config, filtered *candidate.Candidates) error {
	path := defaultRejectedZip
	if config.Export != nil && config.Export.RejectedZip != "" {
		path = config.Export.RejectedZip
	}

	rejected := filtered.WithStatus(candidate.StatusRejected)
	if err := export.ZipFiles(path, rejected, logger); err != nil {
		return fmt.Errorf("exporting rejected CVs: %w", err)
	}

	logger.Info("exported rejected CVs",
		zap.String("path", path),
		zap.Int("count", len(rejected)),
	)
	return nil
}

func saveStatuses(logger *zap.Logger, filtered *candidate.Candidates, statuses *candidate.Statuses, statusPath string) error {
	statuses.Snapshot(filtered)
	if statusPath == "" {
		return nil
	}

	if err := statuses.ToFile(statusPath); err != nil {
		return fmt.Errorf("saving status file: %w", err)
	}

	logger.Info("statuses saved", zap.String("path", statusPath))
	return nil
}

func resolveStatusPath(config *Config) string {
	if config != nil {
		if path := strings.TrimSpace(config.StatusFile); path != "" {
			return path
		}
	}
	return strings.TrimSpace(viper.GetString("status-file"))
}

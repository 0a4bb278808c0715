package command

import (
	"fmt"
	"math"
	"time"

	"talentpulse/config"
	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/dataset"
	"talentpulse/internal/database/mongodb/model"
	mongoRepo "talentpulse/internal/database/mongodb/repository"
	"talentpulse/internal/prediction"
	"talentpulse/internal/service"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// MaxListedFieldErrors inspect 預設列出的欄位錯誤數，負值表示全部
const MaxListedFieldErrors = 20

type DashboardHandler struct {
	logger           *zap.Logger
	conf             *config.Configuration
	loader           *dataset.FileLoader
	dashboardService *service.DashboardService
	repository       *mongoRepo.AttritionPredictionRepository
}

func NewDashboardHandler(
	logger *zap.Logger,
	conf *config.Configuration,
	loader *dataset.FileLoader,
	dashboardService *service.DashboardService,
	repository *mongoRepo.AttritionPredictionRepository,
) *DashboardHandler {
	return &DashboardHandler{
		logger:           logger,
		conf:             conf,
		loader:           loader,
		dashboardService: dashboardService,
		repository:       repository,
	}
}

// Aggregate 執行一次重算並輸出完整 Bundle
func (handler *DashboardHandler) Aggregate(cmd *cobra.Command, args []string) error {
	bundle, err := handler.dashboardService.Refresh(cmd.Context(), core.RefreshTriggerCLI)
	if err != nil {
		return err
	}
	pretty, _ := cmd.Flags().GetBool("pretty")
	return writeJSON(cmd, bundle, pretty)
}

type inspectResult struct {
	Path        string   `json:"path"`
	Columns     []string `json:"columns"`
	Rows        int      `json:"rows"`
	SkippedRows int      `json:"skippedRows"`
	FieldErrors int      `json:"fieldErrors"`
	Errors      []string `json:"errors,omitempty"`
}

// Inspect 只載入資料檔並輸出載入摘要，不做任何計算
func (handler *DashboardHandler) Inspect(cmd *cobra.Command, args []string) error {
	_, report, err := handler.loader.Load(cmd.Context())
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		limit = report.FieldErrorCount()
	}

	result := inspectResult{
		Path:        handler.loader.Path(),
		Columns:     report.Columns,
		Rows:        report.Rows,
		SkippedRows: report.SkippedRows,
		FieldErrors: report.FieldErrorCount(),
	}
	for i, fieldErr := range report.FieldErrors {
		if i >= limit {
			break
		}
		result.Errors = append(result.Errors, fieldErr.Error())
	}
	pretty, _ := cmd.Flags().GetBool("pretty")
	return writeJSON(cmd, result, pretty)
}

// SeedPredictions 以模擬來源產生預測並寫入 MongoDB，供 PREDICTION.SOURCE=mongo 使用
func (handler *DashboardHandler) SeedPredictions(cmd *cobra.Command, args []string) error {
	if !handler.conf.MongoDB.Enabled {
		return mongoRepo.ErrMongoDisabled
	}
	records, _, err := handler.loader.Load(cmd.Context())
	if err != nil {
		return err
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	modelName, _ := cmd.Flags().GetString("model")

	source := prediction.NewSimulatedSource(seed)
	predictions, err := source.Predict(cmd.Context(), records)
	if err != nil {
		return err
	}

	scoredAt := time.Now().UTC()
	var written, skipped int
	for i, record := range records {
		employeeNumber, ok := record.Int(dataset.ColumnEmployeeNumber)
		if !ok {
			skipped++
			continue
		}
		doc := model.AttritionPrediction{
			EmployeeNumber:    employeeNumber,
			RetentionDecision: string(analytics.Keep),
			ModelName:         modelName,
			ScoredAt:          scoredAt,
		}
		if i < len(predictions.RiskScores) && !math.IsNaN(predictions.RiskScores[i]) {
			risk := predictions.RiskScores[i]
			doc.RiskScore = &risk
		}
		if i < len(predictions.Decisions) && predictions.Decisions[i] != "" {
			doc.RetentionDecision = string(predictions.Decisions[i])
		}
		if err := handler.repository.Upsert(cmd.Context(), doc); err != nil {
			return fmt.Errorf("upsert employee %d: %w", employeeNumber, err)
		}
		written++
	}

	handler.logger.Info("attrition predictions seeded",
		zap.Int("written", written),
		zap.Int("skipped", skipped),
		zap.Int64("seed", seed),
		zap.String("model", modelName),
	)
	cmd.Printf("seeded %d predictions (%d rows without EmployeeNumber skipped)\n", written, skipped)
	return nil
}

func writeJSON(cmd *cobra.Command, value any, pretty bool) error {
	var (
		body []byte
		err  error
	)
	if pretty {
		body, err = json.MarshalIndent(value, "", "  ")
	} else {
		body, err = json.Marshal(value)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return err
}

package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	infraES "foodgram-go/internal/infra/elasticsearch"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

type tagEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type ingredientEntry struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// ImportTags 从 JSON 文件导入标签，按 slug 幂等，重复执行不会产生重复记录
func ImportTags(path string, tagRepo *repository.TagRepository) (created int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read tags file: %w", err)
	}

	var entries []tagEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("parse tags file: %w", err)
	}

	for _, e := range entries {
		tag := &model.Tag{Name: e.Name, Color: e.Color, Slug: e.Slug}
		isNew, err := tagRepo.FirstOrCreate(tag)
		if err != nil {
			return created, fmt.Errorf("import tag %q: %w", e.Slug, err)
		}
		if isNew {
			created++
		}
	}

	logger.Info("Tags imported",
		zap.String("file", path),
		zap.Int("total", len(entries)),
		zap.Int("created", created),
	)
	return created, nil
}

// ImportIngredients 从 JSON 文件导入食材，按（名称+计量单位）幂等
func ImportIngredients(path string, ingredientRepo *repository.IngredientRepository) (created int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read ingredients file: %w", err)
	}

	var entries []ingredientEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("parse ingredients file: %w", err)
	}

	for _, e := range entries {
		ingredient := &model.Ingredient{Name: e.Name, MeasurementUnit: e.MeasurementUnit}
		isNew, err := ingredientRepo.FirstOrCreate(ingredient)
		if err != nil {
			return created, fmt.Errorf("import ingredient %q: %w", e.Name, err)
		}
		if isNew {
			created++
		}
	}

	logger.Info("Ingredients imported",
		zap.String("file", path),
		zap.Int("total", len(entries)),
		zap.Int("created", created),
	)
	return created, nil
}

// SyncIngredientsToES 将全部食材同步到 Elasticsearch，ES 不可用时仅告警
func SyncIngredientsToES(ingredientRepo *repository.IngredientRepository) error {
	if infraES.Get() == nil {
		logger.Warn("Elasticsearch not available, skipping ingredient sync")
		return nil
	}

	ingredients, err := ingredientRepo.ListAll()
	if err != nil {
		return fmt.Errorf("list ingredients: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	return infraES.BulkIndexIngredients(ctx, ingredients)
}

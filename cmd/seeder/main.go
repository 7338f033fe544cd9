package main

import (
	"fmt"

	"foodgram-go/internal/config"
	"foodgram-go/internal/infra/database"
	infraES "foodgram-go/internal/infra/elasticsearch"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/seed"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.Tag{},
		&model.Ingredient{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// ES 可选，失败不阻塞导入
	esAvailable := false
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, skipping index sync", zap.Error(err))
	} else {
		defer infraES.Close()
		esAvailable = true
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	db := database.Get()
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)

	if _, err := seed.ImportTags(cfg.Seed.TagsFile, tagRepo); err != nil {
		logger.Fatal("Failed to import tags", zap.Error(err))
	}

	if _, err := seed.ImportIngredients(cfg.Seed.IngredientsFile, ingredientRepo); err != nil {
		logger.Fatal("Failed to import ingredients", zap.Error(err))
	}

	if esAvailable {
		if err := seed.SyncIngredientsToES(ingredientRepo); err != nil {
			logger.Warn("Failed to sync ingredients to Elasticsearch", zap.Error(err))
		}
	}

	logger.Info("Seed completed")
}

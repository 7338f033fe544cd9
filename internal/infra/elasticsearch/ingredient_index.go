package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodgram-go/internal/config"
	"foodgram-go/internal/model"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// ingredientsIndexName 从配置取食材索引名，缺省 "ingredients"
func ingredientsIndexName() string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index["ingredients"]; name != "" {
		return name
	}
	return "ingredients"
}

// GetIngredientsIndexMapping 返回 ingredients 索引的 mapping
// name 使用 edge_ngram 分词支持前缀搜索
func GetIngredientsIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0,
			"analysis": {
				"analyzer": {
					"name_prefix_analyzer": {
						"type": "custom",
						"tokenizer": "keyword",
						"filter": ["lowercase", "name_edge_ngram"]
					},
					"name_search_analyzer": {
						"type": "custom",
						"tokenizer": "keyword",
						"filter": ["lowercase"]
					}
				},
				"filter": {
					"name_edge_ngram": {
						"type": "edge_ngram",
						"min_gram": 1,
						"max_gram": 30
					}
				}
			}
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"name": {
					"type": "text",
					"analyzer": "name_prefix_analyzer",
					"search_analyzer": "name_search_analyzer",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 200}}
				},
				"measurement_unit": {"type": "keyword"}
			}
		}
	}`
}

// EnsureIngredientsIndex 确保 ingredients 索引存在，不存在则创建
func EnsureIngredientsIndex(ctx context.Context) error {
	indexName := ingredientsIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch ingredients index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(GetIngredientsIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch ingredients index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureIngredientsIndex(ctx)
}

// ESIngredientDoc ES 食材文档结构
type ESIngredientDoc struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// BulkIndexIngredients 批量索引食材（seeder 导入后调用）
func BulkIndexIngredients(ctx context.Context, ingredients []model.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}

	indexName := ingredientsIndexName()

	var buf bytes.Buffer
	for i := range ingredients {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": indexName,
				"_id":    fmt.Sprintf("%d", ingredients[i].ID),
			},
		}
		metaJSON, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		doc := ESIngredientDoc{
			ID:              ingredients[i].ID,
			Name:            ingredients[i].Name,
			MeasurementUnit: ingredients[i].MeasurementUnit,
		}
		docJSON, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		buf.Write(metaJSON)
		buf.WriteByte('\n')
		buf.Write(docJSON)
		buf.WriteByte('\n')
	}

	resp, err := Bulk(ctx, &buf)
	if err != nil {
		return fmt.Errorf("bulk index ingredients: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("bulk index ingredients failed: %s", resp.String())
	}

	logger.Info("Ingredients synced to Elasticsearch",
		zap.String("index", indexName),
		zap.Int("count", len(ingredients)),
	)
	return nil
}

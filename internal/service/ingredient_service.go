package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/config"
	infraES "foodgram-go/internal/infra/elasticsearch"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrIngredientNotFound = errors.New("食材不存在")

const ingredientSearchLimit = 50

type IngredientService struct {
	ingredientRepo *repository.IngredientRepository
}

func NewIngredientService(ingredientRepo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// GetIngredient 获取单个食材
func (s *IngredientService) GetIngredient(id int64) (*dto.IngredientInfo, error) {
	ingredient, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &dto.IngredientInfo{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}, nil
}

// SearchIngredients 按名称前缀搜索食材
// 优先走 Elasticsearch，ES 不可用或查询失败时降级为数据库前缀查询
func (s *IngredientService) SearchIngredients(ctx context.Context, name string) ([]dto.IngredientInfo, error) {
	name = strings.TrimSpace(name)

	if name != "" && infraES.Get() != nil {
		items, err := s.searchViaES(ctx, name)
		if err == nil {
			return items, nil
		}
		logger.Warn("Elasticsearch ingredient search failed, falling back to database",
			zap.String("name", name),
			zap.Error(err),
		)
	}

	ingredients, err := s.ingredientRepo.SearchByNamePrefix(name, ingredientSearchLimit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.IngredientInfo, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, dto.IngredientInfo{
			ID:              ing.ID,
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
		})
	}
	return items, nil
}

// searchViaES Elasticsearch 前缀搜索，结果按名称升序
func (s *IngredientService) searchViaES(ctx context.Context, name string) ([]dto.IngredientInfo, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"name": name,
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"name.keyword": "asc"},
		},
		"size": ingredientSearchLimit,
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	indexName := config.GetElasticsearch().Index["ingredients"]
	if indexName == "" {
		indexName = "ingredients"
	}
	resp, err := infraES.Search(ctx, indexName, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("elasticsearch search failed: %s", resp.String())
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source infraES.ESIngredientDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	items := make([]dto.IngredientInfo, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		items = append(items, dto.IngredientInfo{
			ID:              hit.Source.ID,
			Name:            hit.Source.Name,
			MeasurementUnit: hit.Source.MeasurementUnit,
		})
	}
	return items, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/config"
	infraKafka "foodgram-go/internal/infra/kafka"
	infraMinio "foodgram-go/internal/infra/minio"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"github.com/rs/xid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImageService 菜谱图片上传与缩略图结果回写
type ImageService struct {
	recipeRepo *repository.RecipeRepository
}

func NewImageService(recipeRepo *repository.RecipeRepository) *ImageService {
	return &ImageService{recipeRepo: recipeRepo}
}

// UploadRecipeImage 上传菜谱图片（仅作者）
// 上传成功后投递缩略图生成任务，任务投递失败不影响上传结果
func (s *ImageService) UploadRecipeImage(ctx context.Context, userID, recipeID int64, reader io.Reader, fileSize int64, contentType, filename string) (*dto.RecipeShort, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrNotRecipeAuthor
	}

	minioCfg := config.GetMinIO()

	ext := path.Ext(filename)
	objectName := fmt.Sprintf("recipes/%d/%s%s", recipeID, xid.New().String(), ext)

	if _, err := infraMinio.UploadFile(ctx, minioCfg.ImageBucket, objectName, reader, fileSize, contentType); err != nil {
		return nil, err
	}

	imageURL := infraMinio.GetPublicURL(minioCfg.Endpoint, minioCfg.UseSSL, minioCfg.ImageBucket, objectName)
	if err := s.recipeRepo.UpdateImage(recipeID, imageURL); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	task := &infraKafka.ThumbnailTask{
		RecipeID:   recipeID,
		ObjectName: objectName,
		Bucket:     minioCfg.ImageBucket,
	}
	if topic := config.GetKafka().Topics["image_tasks"]; topic != "" {
		if err := infraKafka.SendThumbnailTask(ctx, topic, task); err != nil {
			logger.Warn("Failed to enqueue thumbnail task",
				zap.Int64("recipe_id", recipeID),
				zap.Error(err),
			)
		}
	}

	recipe.Image = &imageURL
	return toRecipeShort(recipe), nil
}

// HandleThumbnailResult 处理缩略图生成结果，成功时回写菜谱缩略图地址
func (s *ImageService) HandleThumbnailResult(result *infraKafka.ThumbnailResult) error {
	if result.Status != "success" {
		logger.Warn("Thumbnail generation failed",
			zap.Int64("recipe_id", result.RecipeID),
			zap.String("error", result.Error),
		)
		return nil
	}

	err := s.recipeRepo.UpdateThumbnail(result.RecipeID, result.ThumbnailURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 菜谱可能在缩略图生成期间被删除
			logger.Warn("Recipe deleted before thumbnail result arrived",
				zap.Int64("recipe_id", result.RecipeID),
			)
			return nil
		}
		return err
	}

	logger.Info("Recipe thumbnail updated",
		zap.Int64("recipe_id", result.RecipeID),
		zap.String("thumbnail", result.ThumbnailURL),
	)
	return nil
}

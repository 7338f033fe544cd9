package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"time"

	"foodgram-go/internal/config"
	infraKafka "foodgram-go/internal/infra/kafka"
	infraMinio "foodgram-go/internal/infra/minio"
	"foodgram-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	thumbnailMaxWidth  = 400
	thumbnailMaxHeight = 400
	jpegQuality        = 85
)

// HandleTask 处理一个缩略图任务的完整流程：
//  1. 从 MinIO 下载原始图片
//  2. 等比缩放到缩略图尺寸
//  3. 上传缩略图到 MinIO
//  4. 发送结果消息到 Kafka
func HandleTask(task *infraKafka.ThumbnailTask) error {
	logger.Info("Thumbnail task started",
		zap.Int64("recipe_id", task.RecipeID),
		zap.String("object", task.ObjectName),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	src, err := downloadImage(ctx, task.Bucket, task.ObjectName)
	if err != nil {
		return sendFailure(task.RecipeID, fmt.Errorf("download from minio: %w", err))
	}

	thumb := resize(src, thumbnailMaxWidth, thumbnailMaxHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return sendFailure(task.RecipeID, fmt.Errorf("encode thumbnail: %w", err))
	}

	minioCfg := config.GetMinIO()
	thumbObjectName := fmt.Sprintf("recipes/%d/thumbnail.jpg", task.RecipeID)

	if _, err := infraMinio.UploadFile(ctx, minioCfg.ImageBucket, thumbObjectName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()), "image/jpeg"); err != nil {
		return sendFailure(task.RecipeID, fmt.Errorf("upload thumbnail: %w", err))
	}

	thumbnailURL := infraMinio.GetPublicURL(minioCfg.Endpoint, minioCfg.UseSSL, minioCfg.ImageBucket, thumbObjectName)

	return sendResult(&infraKafka.ThumbnailResult{
		RecipeID:     task.RecipeID,
		Status:       "success",
		ThumbnailURL: thumbnailURL,
	})
}

// downloadImage 从 MinIO 下载并解码图片（支持 JPEG/PNG）
func downloadImage(ctx context.Context, bucket, objectName string) (image.Image, error) {
	obj, err := infraMinio.Get().GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	img, _, err := image.Decode(obj)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// resize 等比缩放图片，不超过 maxW x maxH，原图更小时不放大
func resize(src image.Image, maxW, maxH int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= maxW && h <= maxH {
		return src
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func sendResult(result *infraKafka.ThumbnailResult) error {
	topic := config.GetKafka().Topics["image_results"]
	if topic == "" {
		return fmt.Errorf("kafka topic image_results not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return infraKafka.SendThumbnailResult(ctx, topic, result)
}

func sendFailure(recipeID int64, originalErr error) error {
	logger.Error("Thumbnail task failed", zap.Int64("recipe_id", recipeID), zap.Error(originalErr))

	result := &infraKafka.ThumbnailResult{
		RecipeID: recipeID,
		Status:   "failed",
		Error:    originalErr.Error(),
	}

	if err := sendResult(result); err != nil {
		logger.Error("Failed to send failure result", zap.Error(err))
		return err
	}
	return originalErr
}

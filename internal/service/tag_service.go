package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("标签不存在")

type TagService struct {
	tagRepo *repository.TagRepository
}

func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// ListTags 获取全部标签
func (s *TagService) ListTags() ([]dto.TagInfo, error) {
	tags, err := s.tagRepo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.TagInfo, 0, len(tags))
	for _, t := range tags {
		items = append(items, dto.TagInfo{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug})
	}
	return items, nil
}

// GetTag 获取单个标签
func (s *TagService) GetTag(id int64) (*dto.TagInfo, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &dto.TagInfo{ID: tag.ID, Name: tag.Name, Color: tag.Color, Slug: tag.Slug}, nil
}

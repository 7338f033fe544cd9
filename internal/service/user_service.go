package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo     *repository.UserRepository
	relationRepo *repository.RelationRepository
}

func NewUserService(userRepo *repository.UserRepository, relationRepo *repository.RelationRepository) *UserService {
	return &UserService{userRepo: userRepo, relationRepo: relationRepo}
}

// GetUserByID 获取用户信息，viewerID 非空时计算订阅标记
func (s *UserService) GetUserByID(id int64, viewerID *int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isSubscribed := false
	if viewerID != nil && *viewerID != user.ID {
		isSubscribed, err = s.relationRepo.Exists(repository.RelationSubscribe, *viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return toUserInfo(user, isSubscribed), nil
}

// ListUsers 用户列表（分页），viewerID 非空时批量计算订阅标记
func (s *UserService) ListUsers(viewerID *int64, page, pageSize int) (*dto.UserListData, error) {
	skip := (page - 1) * pageSize
	users, total, err := s.userRepo.List(skip, pageSize)
	if err != nil {
		return nil, err
	}

	subscribed := map[int64]bool{}
	if viewerID != nil && len(users) > 0 {
		ids := make([]int64, 0, len(users))
		for i := range users {
			ids = append(ids, users[i].ID)
		}
		subscribed, err = s.relationRepo.BatchCheck(repository.RelationSubscribe, *viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, *toUserInfo(&users[i], subscribed[users[i].ID]))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.UserListData{
		Users:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

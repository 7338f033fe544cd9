package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodgram-go/internal/repository"
)

var ErrEmptyCart = errors.New("购物车为空")

const shoppingListFilename = "shopping_cart.txt"

type ShoppingService struct {
	shoppingRepo *repository.ShoppingRepository
}

func NewShoppingService(shoppingRepo *repository.ShoppingRepository) *ShoppingService {
	return &ShoppingService{shoppingRepo: shoppingRepo}
}

// BuildShoppingList 生成购物清单文件
// 购物车为空时返回 ErrEmptyCart，不生成文件
func (s *ShoppingService) BuildShoppingList(userID int64) (string, []byte, error) {
	count, err := s.shoppingRepo.CartCount(userID)
	if err != nil {
		return "", nil, err
	}
	if count == 0 {
		return "", nil, ErrEmptyCart
	}

	totals, err := s.shoppingRepo.CartIngredientTotals(userID)
	if err != nil {
		return "", nil, err
	}

	content := formatShoppingList(totals, time.Now())
	return shoppingListFilename, []byte(content), nil
}

// formatShoppingList 渲染购物清单文本
// 聚合行按（名称+计量单位）合并求和，由查询保证按名称升序
func formatShoppingList(totals []repository.IngredientTotal, now time.Time) string {
	var b strings.Builder
	b.WriteString("Foodgram\n购物清单:\n\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "%s - %d %s\n", t.Name, t.Total, t.MeasurementUnit)
	}
	b.WriteString("\n生成日期: ")
	b.WriteString(now.Format("2006-01-02"))
	b.WriteString("\n")
	return b.String()
}

package repositories

import (
	"context"

	"gorm.io/gorm"
)

// PageSize 列表页固定每页条数
const PageSize = 10

// ErrRecordNotFound 表示记录未找到，重用 gorm 的错误
var ErrRecordNotFound = gorm.ErrRecordNotFound

// Page 一页查询结果。超出最后一页时 Items 为空、Total 仍为总数。
type Page[T any] struct {
	Items    []T
	Total    int64
	Number   int
	PageSize int
}

// Pages 返回总页数，至少为 1
func (p Page[T]) Pages() int {
	if p.Total == 0 || p.PageSize <= 0 {
		return 1
	}
	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// HasPrev 是否存在上一页
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext 是否存在下一页
func (p Page[T]) HasNext() bool { return p.Number < p.Pages() }

// PrevNum 上一页页码
func (p Page[T]) PrevNum() int { return p.Number - 1 }

// NextNum 下一页页码
func (p Page[T]) NextNum() int { return p.Number + 1 }

// newestFirst 列表统一排序：按添加时间倒序，同一时刻按 ID 倒序
const newestFirst = "addtime DESC, id DESC"

// paginate 对 query 计数并按 order 取第 page 页（从 1 开始）。
// query 需已设置 Model/Table；scopes（如 Preload）只作用于取数，不影响计数。
func paginate[T any](ctx context.Context, query *gorm.DB, page int, order string, scopes ...func(*gorm.DB) *gorm.DB) (Page[T], error) {
	if page < 1 {
		page = 1
	}
	result := Page[T]{Number: page, PageSize: PageSize, Items: []T{}}

	if err := query.WithContext(ctx).Session(&gorm.Session{}).Count(&result.Total).Error; err != nil {
		return result, err
	}
	offset := (page - 1) * PageSize
	if int64(offset) >= result.Total {
		return result, nil
	}
	if err := query.WithContext(ctx).Scopes(scopes...).Order(order).Offset(offset).Limit(PageSize).Find(&result.Items).Error; err != nil {
		return result, err
	}
	return result, nil
}

// preload 生成预加载关联的 scope
func preload(associations ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, a := range associations {
			db = db.Preload(a)
		}
		return db
	}
}

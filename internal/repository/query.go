package repository

import (
	"strings"

	"github.com/fisker/biteform-backend/pkg/paging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Page 规范化后的分页参数
type Page struct {
	Page     int
	PageSize int
}

func NewPage(page, pageSize int) Page {
	page, pageSize = paging.Normalize(page, pageSize)
	return Page{Page: page, PageSize: pageSize}
}

// orderColumn 排序列，table 为空时不加表名
func orderColumn(table, name string, desc bool) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Table: table, Name: name}, Desc: desc}
}

// paginate 在同一过滤条件上统计总数并取出当前页
func paginate(query *gorm.DB, page Page, order []clause.OrderByColumn, dest interface{}) (int64, error) {
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, err
	}

	find := base
	for _, col := range order {
		find = find.Order(col)
	}
	err := find.Offset(paging.Offset(page.Page, page.PageSize)).
		Limit(page.PageSize).
		Find(dest).Error
	return total, err
}

// containsPattern 不区分大小写的包含匹配
func containsPattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}

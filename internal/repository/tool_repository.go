package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ashwinyue/toolbox/internal/model"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ToolRepository 工具数据访问接口
// 接口定义使 Service 层可以轻松 mock 进行单元测试
type ToolRepository interface {
	FindAll() ([]*model.Tool, error)
	FindByID(id int64) (*model.Tool, error)
	ExistsByID(id int64) (bool, error)
	Save(tool *model.Tool) error
	DeleteByID(id int64) error
	DeleteAll() error
	Count() (int64, error)
}

// gormToolRepository 工具数据访问（GORM 实现）
type gormToolRepository struct {
	db *gorm.DB
}

// NewToolRepository 创建工具仓库
func NewToolRepository(db *gorm.DB) ToolRepository {
	return &gormToolRepository{db: db}
}

// FindAll 列出所有工具，按主键排序
func (r *gormToolRepository) FindAll() ([]*model.Tool, error) {
	var tools []*model.Tool
	err := r.db.Order("id").Find(&tools).Error
	return tools, err
}

// FindByID 获取工具
func (r *gormToolRepository) FindByID(id int64) (*model.Tool, error) {
	var tool model.Tool
	err := r.db.Where("id = ?", id).First(&tool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// ExistsByID 检查工具是否存在
func (r *gormToolRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Tool{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save 保存工具，ID 为零时插入，否则更新
func (r *gormToolRepository) Save(tool *model.Tool) error {
	return r.db.Save(tool).Error
}

// DeleteByID 删除工具
func (r *gormToolRepository) DeleteByID(id int64) error {
	return r.db.Delete(&model.Tool{}, "id = ?", id).Error
}

// DeleteAll 删除所有工具
func (r *gormToolRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&model.Tool{}).Error
}

// Count 统计工具数量
func (r *gormToolRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Tool{}).Count(&count).Error
	return count, err
}

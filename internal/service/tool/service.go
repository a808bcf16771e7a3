// Package tool 提供工具管理服务
package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ashwinyue/toolbox/internal/model"
	"github.com/ashwinyue/toolbox/internal/repository"
)

// 业务错误，由 Handler 映射为 HTTP 状态码
var (
	// ErrNotFound 工具不存在
	ErrNotFound = errors.New("tool not found")
	// ErrInvalidInput 输入无效
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict 名称冲突
	ErrConflict = errors.New("tool name conflict")
)

// ToolService 工具服务接口
// 接口定义使 Handler 层可以轻松 mock 进行单元测试
type ToolService interface {
	GetAll(ctx context.Context) ([]*model.Tool, error)
	GetByID(ctx context.Context, id int64) (*model.Tool, error)
	Add(ctx context.Context, req *ToolRequest) (*model.Tool, error)
	Update(ctx context.Context, id int64, req *ToolRequest) (*model.Tool, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// ToolRequest 创建/更新工具请求
type ToolRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Service 工具服务
type Service struct {
	repo *repository.Repositories
}

// NewService 创建工具服务
func NewService(repo *repository.Repositories) *Service {
	return &Service{repo: repo}
}

var _ ToolService = (*Service)(nil)

// GetAll 列出所有工具，按仓库默认顺序返回
// 保证返回非 nil 切片，空仓库序列化为 [] 而不是 null
func (s *Service) GetAll(ctx context.Context) ([]*model.Tool, error) {
	tools, err := s.repo.Tool.FindAll()
	if err != nil {
		return nil, err
	}
	if tools == nil {
		tools = []*model.Tool{}
	}
	return tools, nil
}

// GetByID 获取工具
func (s *Service) GetByID(ctx context.Context, id int64) (*model.Tool, error) {
	t, err := s.repo.Tool.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("tool %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Add 添加工具
// 名称不能为空；已有工具名称以新名称为前缀（忽略大小写）时拒绝
func (s *Service) Add(ctx context.Context, req *ToolRequest) (*model.Tool, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	existing, err := s.repo.Tool.FindAll()
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(req.Name)
	for _, t := range existing {
		if strings.HasPrefix(strings.ToLower(t.Name), name) {
			return nil, fmt.Errorf("tool name %q already exists: %w", req.Name, ErrConflict)
		}
	}

	t := &model.Tool{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Tool.Save(t); err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	return t, nil
}

// Update 更新工具的名称和描述
func (s *Service) Update(ctx context.Context, id int64, req *ToolRequest) (*model.Tool, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Name = req.Name
	t.Description = req.Description

	if err := s.repo.Tool.Save(t); err != nil {
		return nil, fmt.Errorf("failed to update tool: %w", err)
	}

	return t, nil
}

// DeleteByID 删除工具
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.repo.Tool.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("tool %d: %w", id, ErrNotFound)
	}
	return s.repo.Tool.DeleteByID(id)
}

// Count 统计工具数量
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Tool.Count()
}

// DeleteAll 删除所有工具，没有工具时视为 NotFound
func (s *Service) DeleteAll(ctx context.Context) error {
	count, err := s.repo.Tool.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no tools to delete: %w", ErrNotFound)
	}
	return s.repo.Tool.DeleteAll()
}

// validateName 校验工具名称非空
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("tool name cannot be blank: %w", ErrInvalidInput)
	}
	return nil
}

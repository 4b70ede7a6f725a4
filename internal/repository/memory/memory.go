package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/repository"
)

type toolRepository struct {
	mu    sync.RWMutex
	tools map[domain.Code]domain.Tool
}

// NewToolRepository returns an empty in-process tool store
func NewToolRepository() repository.ToolRepository {
	return &toolRepository{tools: make(map[domain.Code]domain.Tool)}
}

// NewSeededToolRepository returns a store stocked with domain.DefaultCatalog
func NewSeededToolRepository() repository.ToolRepository {
	r := &toolRepository{tools: make(map[domain.Code]domain.Tool)}
	for _, t := range domain.DefaultCatalog() {
		r.tools[t.Code] = *t
	}
	return r
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	if t == nil {
		return fmt.Errorf("create tool: %w: nil tool", domain.ErrInvalidAttribute)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Code]; exists {
		return fmt.Errorf("create tool %s: %w", t.Code, domain.ErrToolExists)
	}
	r.tools[t.Code] = *t
	return nil
}

func (r *toolRepository) GetByCode(ctx context.Context, code domain.Code) (*domain.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[code]
	if !ok {
		return nil, fmt.Errorf("get tool %s: %w", code, domain.ErrToolNotFound)
	}
	return &t, nil
}

// List returns every tool ordered by code
func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]domain.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Code < tools[j].Code })
	return tools, nil
}

func (r *toolRepository) UpdateAttribute(ctx context.Context, code domain.Code, attr domain.Attribute, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tools[code]
	if !ok {
		return fmt.Errorf("update tool %s: %w", code, domain.ErrToolNotFound)
	}
	if err := t.SetAttribute(attr, value); err != nil {
		return fmt.Errorf("update tool %s: %w", code, err)
	}

	// A code change re-keys the record
	if t.Code != code {
		if _, taken := r.tools[t.Code]; taken {
			return fmt.Errorf("update tool %s: %w", code, domain.ErrToolExists)
		}
		delete(r.tools, code)
	}
	r.tools[t.Code] = t
	return nil
}

func (r *toolRepository) Delete(ctx context.Context, code domain.Code) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[code]; !ok {
		return fmt.Errorf("delete tool %s: %w", code, domain.ErrToolNotFound)
	}
	delete(r.tools, code)
	return nil
}

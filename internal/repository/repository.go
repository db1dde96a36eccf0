package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

var (
	ErrNotFound          = errors.New("记录不存在")
	ErrStoreUnavailable  = errors.New("存储不可用")
	ErrDocumentMissing   = fmt.Errorf("%w: 文档不存在", ErrStoreUnavailable)
	ErrIllegalTransition = errors.New("不允许的状态变更")
)

// Backend 负责整个文档的读写，不支持局部读写
type Backend interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

type Repository struct {
	cfg     *config.Config
	backend Backend
	policy  TransitionPolicy
	now     func() time.Time

	// 写操作持有写锁完成 load -> 修改 -> save，避免并发写入时丢失更新
	mu sync.RWMutex
}

func NewRepository(cfg *config.Config, backend Backend) *Repository {
	policy := AllowAnyTransition
	if cfg.Vacation.StrictTransitions {
		policy = StrictTransitions
	}

	return &Repository{
		cfg:     cfg,
		backend: backend,
		policy:  policy,
		now:     time.Now,
	}
}

func (r *Repository) withRead(fn func(doc *domain.Document) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Store.OperationTimeout)*time.Second)
	defer cancel()

	doc, err := r.backend.Load(ctx)
	if err != nil {
		return err
	}
	doc.Normalize()

	return fn(doc)
}

func (r *Repository) withWrite(fn func(doc *domain.Document) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Store.OperationTimeout)*time.Second)
	defer cancel()

	doc, err := r.backend.Load(ctx)
	if err != nil {
		return err
	}
	doc.Normalize()

	// fn 返回错误时不写回，保证请求失败时没有可见的副作用
	if err := fn(doc); err != nil {
		return err
	}

	return r.backend.Save(ctx, doc)
}

// EnsureDocument 在后端中没有文档时写入一个空文档
func (r *Repository) EnsureDocument() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Store.OperationTimeout)*time.Second)
	defer cancel()

	_, err := r.backend.Load(ctx)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrDocumentMissing):
		if err := r.backend.Save(ctx, domain.NewDocument()); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

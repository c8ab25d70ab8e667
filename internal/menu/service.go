package menu

import (
	"context"

	"foodapp/internal/domain"
	apperrors "foodapp/internal/errors"
	"foodapp/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const seedKey = "menu-seed"

type service struct {
	repo        Repository
	seedOnEmpty bool
	seeds       singleflight.Group
	logger      *zap.Logger
}

func NewService(repo Repository, seedOnEmpty bool, logger *zap.Logger) UseCase {
	return &service{
		repo:        repo,
		seedOnEmpty: seedOnEmpty,
		logger:      logger,
	}
}

// ListMenu returns every menu item. An empty menu is seeded with the starter
// items first; concurrent callers share one seeding run, which outlives
// the caller that started it.
func (s *service) ListMenu(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("listing menu", err)
	}

	if len(docs) == 0 && s.seedOnEmpty {
		v, err, _ := s.seeds.Do(seedKey, func() (interface{}, error) {
			return s.seed(context.WithoutCancel(ctx))
		})
		if err != nil {
			return nil, apperrors.NewInternalError("seeding menu", err)
		}
		docs = v.([]store.Document)
	}

	return store.SerializeAll(docs), nil
}

func (s *service) seed(ctx context.Context) ([]store.Document, error) {
	empty, err := s.repo.IsEmpty(ctx)
	if err != nil {
		return nil, err
	}

	if empty {
		items := domain.SeedMenu()
		for _, item := range items {
			if _, err := s.repo.Insert(ctx, item); err != nil {
				return nil, err
			}
		}
		s.logger.Info("seeded empty menu", zap.Int("items", len(items)))
	}

	return s.repo.FindAll(ctx)
}

func (s *service) CreateMenuItem(ctx context.Context, item domain.MenuItem) (*MenuItemResponse, error) {
	item.ApplyDefaults()
	if err := domain.Validate(item); err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, apperrors.NewInternalError("creating menu item", err)
	}

	return &MenuItemResponse{ID: id}, nil
}

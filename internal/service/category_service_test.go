package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"shop-interests/internal/domain"
)

type fakeCategoryRepo struct {
	categories []domain.Category
	interests  map[string]map[string]bool
	countCalls int
	lastLimit  int
	lastOffset int
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{interests: make(map[string]map[string]bool)}
	for _, name := range names {
		repo.categories = append(repo.categories, domain.Category{ID: "cat-" + name, Name: name})
	}
	return repo
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	r.countCalls++
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) ListWithInterest(_ context.Context, userID string, limit, offset int) ([]domain.CategoryInterest, error) {
	r.lastLimit = limit
	r.lastOffset = offset
	var items []domain.CategoryInterest
	for i := offset; i < len(r.categories) && i < offset+limit; i++ {
		cat := r.categories[i]
		items = append(items, domain.CategoryInterest{
			Category:     cat,
			IsInterested: r.interests[userID][cat.ID],
		})
	}
	return items, nil
}

func (r *fakeCategoryRepo) AddInterest(_ context.Context, userID, categoryID string) error {
	if r.interests[userID] == nil {
		r.interests[userID] = make(map[string]bool)
	}
	r.interests[userID][categoryID] = true
	return nil
}

func (r *fakeCategoryRepo) RemoveInterest(_ context.Context, userID, categoryID string) error {
	delete(r.interests[userID], categoryID)
	return nil
}

func TestCategoryService_PageDefaultsAndClamping(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCategoryRepo("books", "games", "garden", "music", "sports", "tech", "toys")
	svc := NewCategoryService(zap.NewNop(), repo, nil)

	page, err := svc.Page(ctx, "u1", 0, 0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if page.Page != 1 || page.PageSize != 6 {
		t.Fatalf("expected defaults page=1 size=6, got %d/%d", page.Page, page.PageSize)
	}
	if len(page.Categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(page.Categories))
	}
	if page.Total != 7 {
		t.Fatalf("expected total 7, got %d", page.Total)
	}

	if _, err := svc.Page(ctx, "u1", 1, 500); err != nil {
		t.Fatalf("page: %v", err)
	}
	if repo.lastLimit != 100 {
		t.Fatalf("expected page size clamped to 100, got %d", repo.lastLimit)
	}

	second, err := svc.Page(ctx, "u1", 2, 6)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if repo.lastOffset != 6 {
		t.Fatalf("expected offset 6, got %d", repo.lastOffset)
	}
	if len(second.Categories) != 1 {
		t.Fatalf("expected 1 category on last page, got %d", len(second.Categories))
	}
}

func TestCategoryService_CountServedFromCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCategoryRepo("books", "games")
	svc := NewCategoryService(zap.NewNop(), repo, NewMemoryCountCache())

	if _, err := svc.Page(ctx, "u1", 1, 6); err != nil {
		t.Fatalf("page: %v", err)
	}
	if _, err := svc.Page(ctx, "u1", 1, 6); err != nil {
		t.Fatalf("page: %v", err)
	}
	if repo.countCalls != 1 {
		t.Fatalf("expected one COUNT within cache TTL, got %d", repo.countCalls)
	}
}

func TestCategoryService_SetInterestToggle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCategoryRepo("books", "games")
	svc := NewCategoryService(zap.NewNop(), repo, nil)

	if err := svc.SetInterest(ctx, "u1", "cat-books", true); err != nil {
		t.Fatalf("set interest: %v", err)
	}
	page, err := svc.Page(ctx, "u1", 1, 6)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if !page.Categories[0].IsInterested {
		t.Fatalf("expected books marked interested")
	}
	if page.Categories[1].IsInterested {
		t.Fatalf("expected games not interested")
	}

	if err := svc.SetInterest(ctx, "u1", "cat-books", false); err != nil {
		t.Fatalf("unset interest: %v", err)
	}
	page, _ = svc.Page(ctx, "u1", 1, 6)
	if page.Categories[0].IsInterested {
		t.Fatalf("expected interest removed")
	}
}

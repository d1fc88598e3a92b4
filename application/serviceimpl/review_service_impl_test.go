package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/services"
)

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*models.ProductReview
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*models.ProductReview)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *models.ProductReview) error {
	copy := *review
	f.reviews[review.ID] = &copy
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductReview, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *review
	return &copy, nil
}

func (f *fakeReviewRepo) GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*models.ProductReview, error) {
	for _, review := range f.reviews {
		if review.ProductID == productID && review.UserID == userID {
			copy := *review
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *models.ProductReview) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copy := *review
	f.reviews[review.ID] = &copy
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]*models.ProductReview, int64, error) {
	var out []*models.ProductReview
	for _, review := range f.reviews {
		if review.ProductID == productID && review.IsApproved {
			copy := *review
			out = append(out, &copy)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepo) ListPending(ctx context.Context, page, limit int) ([]*models.ProductReview, int64, error) {
	var out []*models.ProductReview
	for _, review := range f.reviews {
		if !review.IsApproved {
			copy := *review
			out = append(out, &copy)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	review, ok := f.reviews[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	review.IsApproved = approved
	return nil
}

func (f *fakeReviewRepo) IncrementHelpful(ctx context.Context, id uuid.UUID) error {
	review, ok := f.reviews[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	review.Helpful++
	return nil
}

func newReviewFixture() (services.ReviewService, *fakeReviewRepo, uuid.UUID) {
	productID := uuid.New()
	productRepo := newFakeProductRepo()
	productRepo.products[productID] = &models.Product{ID: productID, Name: "Classic Shirt", Slug: "classic-shirt"}
	reviewRepo := newFakeReviewRepo()
	return NewReviewService(reviewRepo, productRepo, nil), reviewRepo, productID
}

func TestCreateReviewStartsUnapproved(t *testing.T) {
	svc, _, productID := newReviewFixture()
	ctx := context.Background()

	review, err := svc.Create(ctx, uuid.New(), productID, &dto.CreateReviewRequest{Rating: 4, Comment: "good fit"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.IsApproved {
		t.Error("new review must wait for approval")
	}

	// ยังไม่ approve เลยไม่โผล่ในหน้า public
	public, _, err := svc.ListByProduct(ctx, productID, 1, 20)
	if err != nil {
		t.Fatalf("ListByProduct: %v", err)
	}
	if len(public) != 0 {
		t.Errorf("public list = %d reviews, want 0 before approval", len(public))
	}

	pending, total, err := svc.ListPending(ctx, 1, 20)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 || total != 1 {
		t.Errorf("pending list = %d (total %d), want 1", len(pending), total)
	}

	if err := svc.SetApproval(ctx, review.ID, true); err != nil {
		t.Fatalf("SetApproval: %v", err)
	}
	public, _, _ = svc.ListByProduct(ctx, productID, 1, 20)
	if len(public) != 1 {
		t.Errorf("public list = %d reviews after approval, want 1", len(public))
	}
}

func TestCreateReviewOnePerUser(t *testing.T) {
	svc, _, productID := newReviewFixture()
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Create(ctx, userID, productID, &dto.CreateReviewRequest{Rating: 5}); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := svc.Create(ctx, userID, productID, &dto.CreateReviewRequest{Rating: 3}); !errors.Is(err, services.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}

	// คนละ user รีวิว product เดียวกันได้
	if _, err := svc.Create(ctx, uuid.New(), productID, &dto.CreateReviewRequest{Rating: 2}); err != nil {
		t.Errorf("second user review: %v", err)
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	svc, _, _ := newReviewFixture()
	if _, err := svc.Create(context.Background(), uuid.New(), uuid.New(), &dto.CreateReviewRequest{Rating: 4}); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateReviewResetsApproval(t *testing.T) {
	svc, repo, productID := newReviewFixture()
	ctx := context.Background()
	userID := uuid.New()

	review, err := svc.Create(ctx, userID, productID, &dto.CreateReviewRequest{Rating: 4, Comment: "ok"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.SetApproval(ctx, review.ID, true); err != nil {
		t.Fatalf("SetApproval: %v", err)
	}

	rating := 2
	updated, err := svc.Update(ctx, userID, review.ID, &dto.UpdateReviewRequest{Rating: &rating})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.IsApproved {
		t.Error("edited review must drop back to unapproved")
	}
	if updated.Rating != 2 {
		t.Errorf("rating = %d, want 2", updated.Rating)
	}
	if stored := repo.reviews[review.ID]; stored.IsApproved {
		t.Error("stored review must be unapproved after edit")
	}
}

func TestUpdateReviewOwnershipEnforced(t *testing.T) {
	svc, _, productID := newReviewFixture()
	ctx := context.Background()

	review, err := svc.Create(ctx, uuid.New(), productID, &dto.CreateReviewRequest{Rating: 4})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rating := 1
	if _, err := svc.Update(ctx, uuid.New(), review.ID, &dto.UpdateReviewRequest{Rating: &rating}); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("update by stranger: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteReview(t *testing.T) {
	svc, repo, productID := newReviewFixture()
	ctx := context.Background()
	owner := uuid.New()

	review, err := svc.Create(ctx, owner, productID, &dto.CreateReviewRequest{Rating: 4})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, uuid.New(), review.ID, false); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("delete by stranger: err = %v, want ErrNotFound", err)
	}
	// admin ลบรีวิวของใครก็ได้
	if err := svc.Delete(ctx, uuid.New(), review.ID, true); err != nil {
		t.Errorf("delete by admin: %v", err)
	}
	if _, ok := repo.reviews[review.ID]; ok {
		t.Error("review should be gone after admin delete")
	}
}

func TestMarkHelpful(t *testing.T) {
	svc, repo, productID := newReviewFixture()
	ctx := context.Background()

	review, err := svc.Create(ctx, uuid.New(), productID, &dto.CreateReviewRequest{Rating: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.MarkHelpful(ctx, review.ID); err != nil {
		t.Fatalf("MarkHelpful: %v", err)
	}
	if err := svc.MarkHelpful(ctx, review.ID); err != nil {
		t.Fatalf("MarkHelpful: %v", err)
	}
	if got := repo.reviews[review.ID].Helpful; got != 2 {
		t.Errorf("helpful = %d, want 2", got)
	}

	if err := svc.MarkHelpful(ctx, uuid.New()); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("unknown review: err = %v, want ErrNotFound", err)
	}
}

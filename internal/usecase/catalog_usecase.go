package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodpreorder/internal/domain/model"
	repo "foodpreorder/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type CatalogUsecase struct {
	catalogRepo repo.CatalogRepository
}

// DI
func NewCatalogUsecase(catalogRepo repo.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo}
}

// GET /menuの入力DTO
type ListItemsInput struct {
	Q          string
	Category   string
	PriceRange string
}

type ItemListOutput struct {
	Items []model.Item `json:"items"`
}

func (u *CatalogUsecase) ListItems(ctx context.Context, in ListItemsInput) (ItemListOutput, error) {
	if len(in.Q) > 100 {
		return ItemListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	switch in.PriceRange {
	case "", "all", "low", "medium", "high":
	default:
		return ItemListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price range")
	}

	items, err := u.catalogRepo.List(ctx, repo.CatalogListQuery{
		Q:          strings.TrimSpace(in.Q),
		Category:   in.Category,
		PriceRange: in.PriceRange,
	})
	if err != nil {
		return ItemListOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return ItemListOutput{Items: items}, nil
}

func (u *CatalogUsecase) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	it, err := u.catalogRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return it, nil
}

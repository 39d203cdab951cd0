package offers

import (
	"context"
	"errors"
	"fmt"

	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
)

// ErrEmptySlug is returned when a name slugifies to nothing.
var ErrEmptySlug = errors.New("offers: name produces an empty slug")

// SlugAllocator produces collision-free public URL slugs by probing the
// offer store: candidate, candidate-1, candidate-2, ... until free.
type SlugAllocator struct {
	Offers domainoffer.Store
}

// Allocate returns the first free slug derived from name.
func (s *SlugAllocator) Allocate(ctx context.Context, name string) (string, error) {
	base := domainoffer.Slugify(name)
	if base == "" {
		return "", ErrEmptySlug
	}
	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := s.Offers.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

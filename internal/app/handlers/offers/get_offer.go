package offers

import (
	"context"
	"errors"
	"strings"

	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	"github.com/lndominguez/apexutravel-sub004/internal/app/queries"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
)

const getOfferKey = "offers.get"

// GetOfferQuery loads one offer by slug or code.
type GetOfferQuery struct {
	SlugOrCode string
}

func (q GetOfferQuery) Key() string { return getOfferKey }

// GetOfferHandler resolves and enriches a single offer.
type GetOfferHandler struct {
	Offers    domainoffer.Store
	Assembler *Assembler
}

func (h *GetOfferHandler) Handle(ctx context.Context, q GetOfferQuery) (dto.OfferDetail, error) {
	value := strings.TrimSpace(q.SlugOrCode)
	if value == "" {
		return dto.OfferDetail{}, domainoffer.ErrOfferNotFound
	}
	o, err := h.Offers.BySlugOrCode(ctx, value)
	if err != nil {
		return dto.OfferDetail{}, err
	}
	if o == nil {
		return dto.OfferDetail{}, domainoffer.ErrOfferNotFound
	}
	if err := h.Assembler.Enrich(ctx, o); err != nil {
		return dto.OfferDetail{}, err
	}
	return dto.MapOfferDetail(o), nil
}

var _ queries.Handler[GetOfferQuery, dto.OfferDetail] = (*GetOfferHandler)(nil)

// IsNotFound reports whether err maps to a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, domainoffer.ErrOfferNotFound)
}

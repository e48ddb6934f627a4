package estateclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/estate-admin-api/internal/domain"
)

//go:generate mockgen -source=realestate.go -destination=../mocks/realestate.go -package=mocks

type RealEstateClient interface {
	ListRealEstates(ctx context.Context) ([]domain.RealEstate, error)
	GetRealEstate(ctx context.Context, id int64) (*domain.RealEstate, error)
	CreateRealEstate(ctx context.Context, realEstate *domain.RealEstate) (*domain.RealEstate, error)
	UpdateRealEstate(ctx context.Context, realEstate *domain.RealEstate) (*domain.RealEstate, error)
	DeleteRealEstate(ctx context.Context, id int64) error
}

type UnitClient interface {
	ListUnits(ctx context.Context, realEstateID int64) ([]domain.Unit, error)
	CreateUnit(ctx context.Context, unit *domain.Unit) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, unit *domain.Unit) (*domain.Unit, error)
	DeleteUnit(ctx context.Context, id int64) error
}

func (c *EstateClient) ListRealEstates(ctx context.Context) ([]domain.RealEstate, error) {
	return list[domain.RealEstate](ctx, c, pathRealEstates, nil)
}

func (c *EstateClient) GetRealEstate(ctx context.Context, id int64) (*domain.RealEstate, error) {
	var realEstate domain.RealEstate
	err := c.do(ctx, request{method: http.MethodGet, path: pathRealEstateDetails, query: idQuery(id)}, &realEstate)
	if err != nil {
		return nil, err
	}
	return &realEstate, nil
}

func (c *EstateClient) CreateRealEstate(ctx context.Context, realEstate *domain.RealEstate) (*domain.RealEstate, error) {
	return save(ctx, c, http.MethodPost, pathCreateRealEstate, realEstate)
}

func (c *EstateClient) UpdateRealEstate(ctx context.Context, realEstate *domain.RealEstate) (*domain.RealEstate, error) {
	return save(ctx, c, http.MethodPut, pathEditRealEstate, realEstate)
}

func (c *EstateClient) DeleteRealEstate(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteRealEstate, id)
}

func (c *EstateClient) ListUnits(ctx context.Context, realEstateID int64) ([]domain.Unit, error) {
	query := url.Values{}
	if realEstateID > 0 {
		query.Set("realestate_id", strconv.FormatInt(realEstateID, 10))
	}
	return list[domain.Unit](ctx, c, pathUnits, query)
}

func (c *EstateClient) CreateUnit(ctx context.Context, unit *domain.Unit) (*domain.Unit, error) {
	return save(ctx, c, http.MethodPost, pathCreateUnit, unit)
}

func (c *EstateClient) UpdateUnit(ctx context.Context, unit *domain.Unit) (*domain.Unit, error) {
	return save(ctx, c, http.MethodPut, pathEditUnit, unit)
}

func (c *EstateClient) DeleteUnit(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteUnit, id)
}

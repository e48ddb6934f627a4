package estateclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/estate-admin-api/internal/domain"
)

//go:generate mockgen -source=marketing.go -destination=../mocks/marketing.go -package=mocks

type MarketingClient interface {
	ListMarketingRequests(ctx context.Context) ([]domain.MarketingRequest, error)
	CreateMarketingRequest(ctx context.Context, request *domain.MarketingRequest) (*domain.MarketingRequest, error)
	UpdateMarketingRequest(ctx context.Context, request *domain.MarketingRequest) (*domain.MarketingRequest, error)
	UpdateMarketingRequestStatus(ctx context.Context, change *domain.StatusChange) error
	DeleteMarketingRequest(ctx context.Context, id int64) error
}

type UserClient interface {
	ListUsers(ctx context.Context, role string) ([]domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

func (c *EstateClient) ListMarketingRequests(ctx context.Context) ([]domain.MarketingRequest, error) {
	return list[domain.MarketingRequest](ctx, c, pathMarketingRequests, nil)
}

func (c *EstateClient) CreateMarketingRequest(ctx context.Context, req *domain.MarketingRequest) (*domain.MarketingRequest, error) {
	return save(ctx, c, http.MethodPost, pathCreateMarketing, req)
}

func (c *EstateClient) UpdateMarketingRequest(ctx context.Context, req *domain.MarketingRequest) (*domain.MarketingRequest, error) {
	return save(ctx, c, http.MethodPut, pathEditMarketing, req)
}

func (c *EstateClient) UpdateMarketingRequestStatus(ctx context.Context, change *domain.StatusChange) error {
	return c.do(ctx, request{method: http.MethodPut, path: pathMarketingStatus, body: change}, nil)
}

func (c *EstateClient) DeleteMarketingRequest(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteMarketing, id)
}

// ListUsers lista as contas; role vazio traz todas
func (c *EstateClient) ListUsers(ctx context.Context, role string) ([]domain.User, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", role)
	}
	return list[domain.User](ctx, c, pathUsers, query)
}

func (c *EstateClient) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	return save(ctx, c, http.MethodPost, pathCreateUser, user)
}

func (c *EstateClient) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	return save(ctx, c, http.MethodPut, pathEditUser, user)
}

func (c *EstateClient) DeleteUser(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteUser, id)
}

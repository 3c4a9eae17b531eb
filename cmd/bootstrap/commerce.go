package bootstrap

import (
	"context"

	"trainhub/internal/infra/commerce"
	"trainhub/internal/infra/imagegen"
	"trainhub/internal/infra/metacache"
	"trainhub/internal/pkg/config"
	"trainhub/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CommerceModule = fx.Module("commerce",
	fx.Provide(
		fx.Annotate(
			NewStorefrontGateway,
			fx.As(new(commerce.Gateway)),
		),
		NewRedisClient,
		fx.Annotate(
			NewMetadataCache,
			fx.As(new(queries.MetadataCache)),
		),
		imagegen.NewHTTPGenerator,
	),
)

func NewStorefrontGateway(cfg config.Config) (*commerce.StorefrontAdapter, error) {
	return commerce.NewStorefrontAdapter(&commerce.StorefrontConfig{
		BaseURL:        cfg.Storefront.BaseURL,
		ShopURL:        cfg.Storefront.ShopURL,
		AccessToken:    cfg.Storefront.AccessToken,
		TimeoutSeconds: cfg.Storefront.TimeoutSeconds,
	})
}

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := metacache.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

func NewMetadataCache(client *redis.Client, cfg config.Config) *metacache.RedisCache {
	return metacache.NewRedisCache(client, cfg.Redis.MetaTTL)
}

package components

import (
	"trainhub/internal/handler"
	"trainhub/internal/handler/api"
	"trainhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBundleHandler,
		api.NewReviewHandler,
		api.NewComponentHandler,
		api.NewPublicationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	bundle *api.BundleHandler,
	review *api.ReviewHandler,
	component *api.ComponentHandler,
	publication *api.PublicationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Bundle:      bundle,
		Review:      review,
		Component:   component,
		Publication: publication,
	}
}

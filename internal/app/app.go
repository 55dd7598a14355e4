package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/mcpserver"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/chowdeck"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/llm"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/neo4j"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/paystack"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/redis"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/session"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
)

// NewFoodApp creates and returns a new instance of the FoodApp application.
func NewFoodApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitDotEnv{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitCartRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&redis.InitMenuCache{},
			&chowdeck.InitRestaurantCatalog{},
			&paystack.InitPaymentGateway{},
			&neo4j.InitPreferenceGraph{},
			&session.InitSessionVerifier{},
			&llm.InitAssistant{},

			&usecases.InitListRestaurants{},
			&usecases.InitGetRestaurantMenu{},
			&usecases.InitAddItemsToCart{},
			&usecases.InitGetCart{},
			&usecases.InitClearCart{},
			&usecases.InitInitializePayment{},
			&usecases.InitHandlePaymentWebhook{},
			&usecases.InitUpdateUserProfile{},
			&usecases.InitGetPersonalizedSuggestions{},
			&usecases.InitRecordOrder{},
			&usecases.InitRelayOutbox{},
			&assistant.InitAssistantActionRegistry{},
			&usecases.InitStreamChat{},
			&mcpserver.InitToolServer{},
		).
		Host(
			&http.FoodAppServer{},
			&workers.MessageRelay{},
			&workers.OrderEventSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// Package neo4j stores user preferences and order history in a Neo4j graph.
package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	upsertPreferencesCypher = `
MERGE (u:User {id: $userId})
SET u.name = coalesce($name, u.name),
    u.email = coalesce($email, u.email),
    u.cuisines = CASE WHEN size($cuisines) > 0 THEN $cuisines ELSE u.cuisines END,
    u.dietaryRestrictions = CASE WHEN size($dietaryRestrictions) > 0 THEN $dietaryRestrictions ELSE u.dietaryRestrictions END,
    u.spiceLevel = coalesce($spiceLevel, u.spiceLevel),
    u.priceRange = coalesce($priceRange, u.priceRange)
WITH u
FOREACH (allergen IN $allergens |
  MERGE (i:Ingredient {name: allergen})
  MERGE (u)-[:HAS_ALLERGY]->(i)
)`

	recordOrderCypher = `
MERGE (u:User {id: $userId})
WITH u
UNWIND $items AS item
MERGE (m:MenuItem {name: item.name})
CREATE (u)-[:ORDERED {quantity: item.quantity, price: item.price, orderedAt: $orderedAt}]->(m)`

	getProfileCypher = `
MATCH (u:User {id: $userId})
OPTIONAL MATCH (u)-[:HAS_ALLERGY]->(i:Ingredient)
WITH u, collect(DISTINCT i.name) AS allergens
OPTIONAL MATCH (u)-[o:ORDERED]->(m:MenuItem)
WITH u, allergens, m.name AS name, avg(o.price) AS price, sum(o.quantity) AS quantity
ORDER BY quantity DESC
WITH u, allergens, collect(CASE WHEN name IS NULL THEN NULL ELSE {name: name, price: price, quantity: quantity} END)[..$limit] AS orders
RETURN u.cuisines AS cuisines, allergens, u.spiceLevel AS spiceLevel,
       u.dietaryRestrictions AS dietaryRestrictions, u.priceRange AS priceRange, orders`
)

// cypherRunner executes one Cypher statement and returns its records.
type cypherRunner interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)
}

// driverRunner runs statements through neo4j.ExecuteQuery.
type driverRunner struct {
	driver   neo4j.DriverWithContext
	database string
}

func (r driverRunner) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := neo4j.ExecuteQuery(ctx, r.driver, cypher, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.database),
	)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// PreferenceGraph implements domain.PreferenceGraph.
type PreferenceGraph struct {
	runner          cypherRunner
	pastOrdersLimit int
}

// NewPreferenceGraph creates a new PreferenceGraph.
func NewPreferenceGraph(runner cypherRunner, pastOrdersLimit int) PreferenceGraph {
	return PreferenceGraph{
		runner:          runner,
		pastOrdersLimit: pastOrdersLimit,
	}
}

// UpsertPreferences merges the user node and its allergies.
// Empty lists and nil values keep the stored properties.
func (pg PreferenceGraph) UpsertPreferences(ctx context.Context, identity domain.Identity, prefs domain.UserPreferences) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := pg.runner.Run(spanCtx, upsertPreferencesCypher, map[string]any{
		"userId":              identity.UserID,
		"name":                nullableString(identity.Name),
		"email":               nullableString(identity.Email),
		"cuisines":            nonNil(prefs.Cuisines),
		"allergens":           nonNil(prefs.Allergens),
		"dietaryRestrictions": nonNil(prefs.DietaryRestrictions),
		"spiceLevel":          nullableEnum(prefs.SpiceLevel),
		"priceRange":          nullableEnum(prefs.PriceRange),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

// RecordOrder links the user to every ordered menu item.
func (pg PreferenceGraph) RecordOrder(ctx context.Context, userID string, items []domain.OrderedItem, orderedAt time.Time) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("items", len(items)),
	))
	defer span.End()

	if len(items) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, map[string]any{
			"name":     item.Name,
			"price":    item.Price,
			"quantity": int64(item.Quantity),
		})
	}

	_, err := pg.runner.Run(spanCtx, recordOrderCypher, map[string]any{
		"userId":    userID,
		"items":     rows,
		"orderedAt": orderedAt,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("record order: %w", err)
	}
	return nil
}

// GetProfile returns the stored preferences and most ordered items.
// An unknown user yields an empty profile.
func (pg PreferenceGraph) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	profile := domain.UserProfile{UserID: userID, PastOrders: []domain.OrderedItem{}}

	records, err := pg.runner.Run(spanCtx, getProfileCypher, map[string]any{
		"userId": userID,
		"limit":  int64(pg.pastOrdersLimit),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if len(records) == 0 {
		return profile, nil
	}

	rec := records[0]
	profile.Preferences.Cuisines = stringsValue(rec, "cuisines")
	profile.Preferences.Allergens = stringsValue(rec, "allergens")
	profile.Preferences.DietaryRestrictions = stringsValue(rec, "dietaryRestrictions")
	if v, ok := stringValue(rec, "spiceLevel"); ok {
		level := domain.SpiceLevel(v)
		profile.Preferences.SpiceLevel = &level
	}
	if v, ok := stringValue(rec, "priceRange"); ok {
		pr := domain.PriceRange(v)
		profile.Preferences.PriceRange = &pr
	}

	if raw, ok := rec.Get("orders"); ok {
		if orders, ok := raw.([]any); ok {
			for _, o := range orders {
				m, ok := o.(map[string]any)
				if !ok {
					continue
				}
				profile.PastOrders = append(profile.PastOrders, domain.OrderedItem{
					Name:     asString(m["name"]),
					Price:    asFloat(m["price"]),
					Quantity: int(asInt(m["quantity"])),
				})
			}
		}
	}

	return profile, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableEnum[T ~string](v *T) any {
	if v == nil || *v == "" {
		return nil
	}
	return string(*v)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func stringValue(rec *neo4j.Record, key string) (string, bool) {
	raw, ok := rec.Get(key)
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok && s != ""
}

func stringsValue(rec *neo4j.Record, key string) []string {
	raw, ok := rec.Get(key)
	if !ok || raw == nil {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}

func asInt(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

// InitPreferenceGraph connects to Neo4j and registers the PreferenceGraph.
type InitPreferenceGraph struct {
	Logger          *zerolog.Logger `resolve:""`
	URI             string          `config:"NEO4J_URI" default:"neo4j://localhost:7687"`
	Username        string          `config:"NEO4J_USERNAME" default:"neo4j"`
	Password        string          `config:"NEO4J_PASSWORD"`
	Database        string          `config:"NEO4J_DATABASE" default:"neo4j"`
	PastOrdersLimit int             `config:"NEO4J_PAST_ORDERS_LIMIT" default:"10"`
	driver          neo4j.DriverWithContext
}

// Initialize creates the driver, verifies connectivity and registers the graph.
func (i *InitPreferenceGraph) Initialize(ctx context.Context) (context.Context, error) {
	driver, err := neo4j.NewDriverWithContext(i.URI, neo4j.BasicAuth(i.Username, i.Password, ""))
	if err != nil {
		return ctx, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return ctx, fmt.Errorf("failed to connect to neo4j at %s: %w", i.URI, err)
	}
	i.driver = driver

	depend.Register[domain.PreferenceGraph](NewPreferenceGraph(driverRunner{driver: driver, database: i.Database}, i.PastOrdersLimit))
	return ctx, nil
}

// Close closes the driver.
func (i *InitPreferenceGraph) Close() {
	if i.driver == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := i.driver.Close(ctx); err != nil {
		i.Logger.Error().Err(err).Msg("closing neo4j driver")
	}
}

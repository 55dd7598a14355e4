package neo4j

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

type call struct {
	cypher string
	params map[string]any
}

type fakeRunner struct {
	calls   []call
	records []*neo4j.Record
	err     error
}

func (f *fakeRunner) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	f.calls = append(f.calls, call{cypher: cypher, params: params})
	return f.records, f.err
}

func TestPreferenceGraph_UpsertPreferences(t *testing.T) {
	identity := domain.Identity{UserID: "user-1", Email: "ada@example.com"}

	tests := map[string]struct {
		prefs      domain.UserPreferences
		runErr     error
		wantParams map[string]any
		wantErr    bool
	}{
		"full-preferences": {
			prefs: domain.UserPreferences{
				Cuisines:            []string{"nigerian"},
				Allergens:           []string{"peanut"},
				SpiceLevel:          common.Ptr(domain.SpiceLevel_Hot),
				DietaryRestrictions: []string{"halal"},
				PriceRange:          common.Ptr(domain.PriceRange_Budget),
			},
			wantParams: map[string]any{
				"userId":              "user-1",
				"name":                nil,
				"email":               "ada@example.com",
				"cuisines":            []string{"nigerian"},
				"allergens":           []string{"peanut"},
				"dietaryRestrictions": []string{"halal"},
				"spiceLevel":          "hot",
				"priceRange":          "budget",
			},
		},
		"partial-preferences-keep-stored-values": {
			prefs: domain.UserPreferences{Allergens: []string{"shellfish"}},
			wantParams: map[string]any{
				"userId":              "user-1",
				"name":                nil,
				"email":               "ada@example.com",
				"cuisines":            []string{},
				"allergens":           []string{"shellfish"},
				"dietaryRestrictions": []string{},
				"spiceLevel":          nil,
				"priceRange":          nil,
			},
		},
		"driver-error": {
			prefs:   domain.UserPreferences{},
			runErr:  errors.New("connection refused"),
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			runner := &fakeRunner{err: tt.runErr}
			graph := NewPreferenceGraph(runner, 10)

			err := graph.UpsertPreferences(context.Background(), identity, tt.prefs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if assert.Len(t, runner.calls, 1) {
				assert.Equal(t, upsertPreferencesCypher, runner.calls[0].cypher)
				assert.Equal(t, tt.wantParams, runner.calls[0].params)
			}
		})
	}
}

func TestPreferenceGraph_RecordOrder(t *testing.T) {
	orderedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []domain.OrderedItem{
		{Name: "Jollof Rice", Price: 1500, Quantity: 2},
		{Name: "Chicken", Price: 2000, Quantity: 1},
	}

	runner := &fakeRunner{}
	graph := NewPreferenceGraph(runner, 10)

	assert.NoError(t, graph.RecordOrder(context.Background(), "user-1", items, orderedAt))
	if assert.Len(t, runner.calls, 1) {
		assert.Equal(t, recordOrderCypher, runner.calls[0].cypher)
		assert.Equal(t, map[string]any{
			"userId": "user-1",
			"items": []map[string]any{
				{"name": "Jollof Rice", "price": 1500.0, "quantity": int64(2)},
				{"name": "Chicken", "price": 2000.0, "quantity": int64(1)},
			},
			"orderedAt": orderedAt,
		}, runner.calls[0].params)
	}

	empty := &fakeRunner{}
	assert.NoError(t, NewPreferenceGraph(empty, 10).RecordOrder(context.Background(), "user-1", nil, orderedAt))
	assert.Empty(t, empty.calls)

	failing := &fakeRunner{err: errors.New("timeout")}
	assert.Error(t, NewPreferenceGraph(failing, 10).RecordOrder(context.Background(), "user-1", items, orderedAt))
}

func TestPreferenceGraph_GetProfile(t *testing.T) {
	keys := []string{"cuisines", "allergens", "spiceLevel", "dietaryRestrictions", "priceRange", "orders"}

	tests := map[string]struct {
		records []*neo4j.Record
		runErr  error
		want    domain.UserProfile
		wantErr bool
	}{
		"profile-with-orders": {
			records: []*neo4j.Record{{
				Keys: keys,
				Values: []any{
					[]any{"nigerian", "italian"},
					[]any{"peanut"},
					"hot",
					nil,
					"mid-range",
					[]any{
						map[string]any{"name": "Jollof Rice", "price": 1500.0, "quantity": int64(4)},
						map[string]any{"name": "Chicken", "price": int64(2000), "quantity": int64(1)},
					},
				},
			}},
			want: domain.UserProfile{
				UserID: "user-1",
				Preferences: domain.UserPreferences{
					Cuisines:   []string{"nigerian", "italian"},
					Allergens:  []string{"peanut"},
					SpiceLevel: common.Ptr(domain.SpiceLevel_Hot),
					PriceRange: common.Ptr(domain.PriceRange_MidRange),
				},
				PastOrders: []domain.OrderedItem{
					{Name: "Jollof Rice", Price: 1500, Quantity: 4},
					{Name: "Chicken", Price: 2000, Quantity: 1},
				},
			},
		},
		"unknown-user": {
			want: domain.UserProfile{UserID: "user-1", PastOrders: []domain.OrderedItem{}},
		},
		"driver-error": {
			runErr:  errors.New("connection refused"),
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			runner := &fakeRunner{records: tt.records, err: tt.runErr}
			graph := NewPreferenceGraph(runner, 5)

			got, err := graph.GetProfile(context.Background(), "user-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(5), runner.calls[0].params["limit"])
		})
	}
}

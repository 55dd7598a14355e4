package actions

import (
	"encoding/json"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	usecases_mocks "github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allDefinitions(t *testing.T) map[string]domain.AssistantActionDefinition {
	t.Helper()
	definitions := map[string]domain.AssistantActionDefinition{}
	for _, action := range []domain.AssistantAction{
		NewRestaurantListerAction(usecases_mocks.NewMockListRestaurants(t)),
		NewMenuFetcherAction(usecases_mocks.NewMockGetRestaurantMenu(t)),
		NewCartAdderAction(usecases_mocks.NewMockAddItemsToCart(t)),
		NewCartFetcherAction(usecases_mocks.NewMockGetCart(t)),
		NewCartClearerAction(usecases_mocks.NewMockClearCart(t)),
		NewPaymentButtonAction(usecases_mocks.NewMockInitializePayment(t)),
		NewProfileUpdaterAction(usecases_mocks.NewMockUpdateUserProfile(t)),
		NewSuggestionsAction(usecases_mocks.NewMockGetPersonalizedSuggestions(t)),
	} {
		def := action.Definition()
		definitions[def.Name] = def
	}
	return definitions
}

func TestActionDefinitions_Identity(t *testing.T) {
	definitions := allDefinitions(t)
	require.Len(t, definitions, 8)

	public := []string{"getAvailableRestaurants", "getRestaurantMenu"}
	for name, def := range definitions {
		assert.Equal(t, !contains(public, name), def.RequiresIdentity, name)
		assert.NotEmpty(t, def.Labels.Running, name)
		assert.NotEmpty(t, def.Labels.Failure, name)
	}

	assert.Equal(t, []string{"cart"}, definitions["addMenuItemToCart"].Invalidates)
	assert.Equal(t, []string{"cart"}, definitions["clearCart"].Invalidates)
	assert.Equal(t, []string{"deleteCartItem"}, definitions["clearCart"].Aliases)
}

func TestActionDefinitions_InputSchema(t *testing.T) {
	definitions := allDefinitions(t)

	tests := map[string]struct {
		action    string
		input     string
		expectErr bool
	}{
		"menu-valid":                {action: "getRestaurantMenu", input: `{"id":9,"name":"Suya Spot"}`},
		"menu-id-below-minimum":     {action: "getRestaurantMenu", input: `{"id":5}`, expectErr: true},
		"menu-missing-id":           {action: "getRestaurantMenu", input: `{"name":"Suya Spot"}`, expectErr: true},
		"cart-valid-null-image":     {action: "addMenuItemToCart", input: `{"cart":[{"name":"Jollof Rice","price":1500,"image":null,"quantity":2}]}`},
		"cart-empty":                {action: "addMenuItemToCart", input: `{"cart":[]}`, expectErr: true},
		"cart-null":                 {action: "addMenuItemToCart", input: `{"cart":null}`, expectErr: true},
		"cart-zero-quantity":        {action: "addMenuItemToCart", input: `{"cart":[{"name":"Jollof Rice","price":1500,"image":null,"quantity":0}]}`, expectErr: true},
		"cart-fractional-quantity":  {action: "addMenuItemToCart", input: `{"cart":[{"name":"Jollof Rice","price":1500,"image":null,"quantity":1.5}]}`, expectErr: true},
		"cart-missing-image":        {action: "addMenuItemToCart", input: `{"cart":[{"name":"Jollof Rice","price":1500,"quantity":1}]}`, expectErr: true},
		"payment-valid":             {action: "providePaymentButton", input: `{"totalAmount":19.99}`},
		"payment-zero":              {action: "providePaymentButton", input: `{"totalAmount":0}`, expectErr: true},
		"profile-valid":             {action: "updateUserProfile", input: `{"preferences":{"spiceLevel":"mild","priceRange":"budget"},"reasoning":"Prefers mild, cheap meals."}`},
		"profile-unknown-spice":     {action: "updateUserProfile", input: `{"preferences":{"spiceLevel":"extreme"},"reasoning":"x"}`, expectErr: true},
		"profile-missing-reasoning": {action: "updateUserProfile", input: `{"preferences":{}}`, expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			def, found := definitions[tt.action]
			require.True(t, found)
			require.NotNil(t, def.InputSchema)

			resolved, err := def.InputSchema.Resolve(nil)
			require.NoError(t, err)

			var instance any
			require.NoError(t, json.Unmarshal([]byte(tt.input), &instance))

			err = resolved.Validate(instance)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUnmarshalActionInput(t *testing.T) {
	tests := map[string]struct {
		input     string
		expected  menuFetcherInput
		expectErr bool
	}{
		"object":          {input: `{"id":9}`, expected: menuFetcherInput{ID: 9}},
		"empty-string":    {input: "  ", expected: menuFetcherInput{}},
		"unknown-field":   {input: `{"id":9,"city":"Lagos"}`, expectErr: true},
		"trailing-object": {input: `{"id":9}{"id":10}`, expectErr: true},
		"malformed":       {input: `{"id":`, expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got menuFetcherInput
			err := unmarshalActionInput(tt.input, &got)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

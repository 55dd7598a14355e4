package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
)

// UnauthorizedContent is returned to the model when an anonymous caller
// invokes an action that requires a signed-in user.
const UnauthorizedContent = `{"error":"unauthorized"}`

// registeredAction holds an action with its definition and resolved input schema.
type registeredAction struct {
	action     domain.AssistantAction
	definition domain.AssistantActionDefinition
	schema     *jsonschema.Resolved
}

// ActionRegistry resolves, validates and executes assistant actions.
type ActionRegistry struct {
	byName map[string]registeredAction
	names  []string
}

// NewActionRegistry registers the actions under their names and aliases.
// Input schemas are resolved once here.
func NewActionRegistry(assistantActions ...domain.AssistantAction) (ActionRegistry, error) {
	registry := ActionRegistry{byName: make(map[string]registeredAction)}

	for _, action := range assistantActions {
		def := action.Definition()
		if strings.TrimSpace(def.Name) == "" {
			return ActionRegistry{}, errors.New("action name cannot be empty")
		}

		entry := registeredAction{action: action, definition: def}
		if def.InputSchema != nil {
			resolved, err := def.InputSchema.Resolve(nil)
			if err != nil {
				return ActionRegistry{}, fmt.Errorf("failed to resolve input schema of %s: %w", def.Name, err)
			}
			entry.schema = resolved
		}

		for _, name := range append([]string{def.Name}, def.Aliases...) {
			if _, exists := registry.byName[name]; exists {
				return ActionRegistry{}, fmt.Errorf("action %s is already registered", name)
			}
			registry.byName[name] = entry
		}
		registry.names = append(registry.names, def.Name)
	}

	sort.Strings(registry.names)
	return registry, nil
}

// Execute validates the call arguments and runs the action.
// Failures are returned as *domain.ActionError.
func (r ActionRegistry) Execute(ctx context.Context, identity domain.Identity, call domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	entry, found := r.byName[call.Name]
	if !found {
		return domain.AssistantActionResult{}, domain.NewActionError(
			domain.ActionErrorKind_UnknownTool, call.Name,
			fmt.Errorf("action %q is not registered", call.Name),
		)
	}

	if entry.definition.RequiresIdentity && !identity.IsAuthenticated() {
		return domain.AssistantActionResult{
			Content: UnauthorizedContent,
			Status:  domain.ActionStatus_Incomplete,
		}, nil
	}

	if err := entry.validate(call.Input); err != nil {
		return domain.AssistantActionResult{}, domain.NewActionError(
			domain.ActionErrorKind_InvalidArguments, entry.definition.Name, err,
		)
	}

	result, err := entry.action.Execute(ctx, identity, call)
	if err != nil {
		return domain.AssistantActionResult{}, domain.NewActionError(
			domain.ActionErrorKind_Execution, entry.definition.Name, err,
		)
	}
	if result.Status == "" {
		result.Status = domain.ActionStatus_Complete
	}
	return result, nil
}

// validate checks the raw arguments against the resolved input schema.
func (e registeredAction) validate(input string) error {
	if strings.TrimSpace(input) == "" {
		input = "{}"
	}

	var instance any
	if err := json.Unmarshal([]byte(input), &instance); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if _, ok := instance.(map[string]any); !ok {
		return errors.New("arguments must be a JSON object")
	}
	if e.schema == nil {
		return nil
	}
	return e.schema.Validate(instance)
}

// Definition returns the definition registered under the name or alias.
func (r ActionRegistry) Definition(name string) (domain.AssistantActionDefinition, bool) {
	entry, found := r.byName[name]
	if !found {
		return domain.AssistantActionDefinition{}, false
	}
	return entry.definition, true
}

// List returns every action definition sorted by name.
func (r ActionRegistry) List() []domain.AssistantActionDefinition {
	res := make([]domain.AssistantActionDefinition, 0, len(r.names))
	for _, name := range r.names {
		res = append(res, r.byName[name].definition)
	}
	return res
}

// InitAssistantActionRegistry registers the assistant action registry.
type InitAssistantActionRegistry struct {
	ListRestaurants            usecases.ListRestaurants            `resolve:""`
	GetRestaurantMenu          usecases.GetRestaurantMenu          `resolve:""`
	AddItemsToCart             usecases.AddItemsToCart             `resolve:""`
	GetCart                    usecases.GetCart                    `resolve:""`
	ClearCart                  usecases.ClearCart                  `resolve:""`
	InitializePayment          usecases.InitializePayment          `resolve:""`
	UpdateUserProfile          usecases.UpdateUserProfile          `resolve:""`
	GetPersonalizedSuggestions usecases.GetPersonalizedSuggestions `resolve:""`
}

// Initialize builds the registry with every assistant action.
func (i InitAssistantActionRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry, err := NewActionRegistry(
		actions.NewRestaurantListerAction(i.ListRestaurants),
		actions.NewMenuFetcherAction(i.GetRestaurantMenu),
		actions.NewCartAdderAction(i.AddItemsToCart),
		actions.NewCartFetcherAction(i.GetCart),
		actions.NewCartClearerAction(i.ClearCart),
		actions.NewPaymentButtonAction(i.InitializePayment),
		actions.NewProfileUpdaterAction(i.UpdateUserProfile),
		actions.NewSuggestionsAction(i.GetPersonalizedSuggestions),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to build assistant action registry: %w", err)
	}

	depend.Register[domain.AssistantActionRegistry](registry)
	return ctx, nil
}

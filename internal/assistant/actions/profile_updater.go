package actions

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/google/jsonschema-go/jsonschema"
)

type profileUpdaterInput struct {
	Preferences domain.UserPreferences `json:"preferences" jsonschema:"Preferences learned from the conversation."`
	Reasoning   string                 `json:"reasoning" jsonschema:"Explain what you learned about the user."`
}

// ProfileUpdaterAction is an assistant action for storing the caller's food preferences.
type ProfileUpdaterAction struct {
	updateUserProfile usecases.UpdateUserProfile
}

// NewProfileUpdaterAction creates a new instance of ProfileUpdaterAction.
func NewProfileUpdaterAction(updateUserProfile usecases.UpdateUserProfile) ProfileUpdaterAction {
	return ProfileUpdaterAction{updateUserProfile: updateUserProfile}
}

// Definition returns the assistant action definition for ProfileUpdaterAction.
func (a ProfileUpdaterAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "updateUserProfile",
		Description: "Update the user's profile with preferences, allergies or dietary restrictions learned from the conversation.",
		InputSchema: inputSchemaFor[profileUpdaterInput](func(s *jsonschema.Schema) {
			prefs := s.Properties["preferences"].Properties
			stringEnum(prefs["spiceLevel"],
				string(domain.SpiceLevel_Mild), string(domain.SpiceLevel_Medium), string(domain.SpiceLevel_Hot),
			)
			stringEnum(prefs["priceRange"],
				string(domain.PriceRange_Budget), string(domain.PriceRange_MidRange), string(domain.PriceRange_Premium),
			)
			for _, name := range []string{"cuisines", "allergens", "dietaryRestrictions"} {
				arrayOnly(prefs[name])
			}
		}),
		Hints: domain.AssistantActionHints{
			UseWhen:   "the user mentions cuisines they like, allergies, spice tolerance, diet or budget.",
			AvoidWhen: "nothing new was learned.",
			ArgRules:  `Example: {"preferences":{"cuisines":["nigerian"],"spiceLevel":"hot"},"reasoning":"The user loves spicy jollof."}`,
		},
		Labels: domain.ActionLabels{
			Running: "Remembering your preferences...",
			Failure: "Failed to update your preferences",
		},
		RequiresIdentity: true,
	}
}

// Execute executes ProfileUpdaterAction.
func (a ProfileUpdaterAction) Execute(ctx context.Context, identity domain.Identity, call domain.AssistantActionCall) (domain.AssistantActionResult, error) {
	var params profileUpdaterInput
	if err := unmarshalActionInput(call.Input, &params); err != nil {
		return domain.AssistantActionResult{}, err
	}

	if err := a.updateUserProfile.Execute(ctx, identity, params.Preferences); err != nil {
		return domain.AssistantActionResult{}, err
	}

	output := map[string]any{"success": true, "learned": params.Reasoning}
	content, err := encodeContent(output)
	if err != nil {
		return domain.AssistantActionResult{}, err
	}

	return domain.AssistantActionResult{
		Content: content,
		Data:    output,
		Status:  domain.ActionStatus_Complete,
	}, nil
}

package manufacturing

import "github.com/andrescamacho/outpost-go/internal/domain/shared"

// RecipeConsumer makes every recipe single-use: once crafted it is removed
// from the factory and the same index is reselected.
type RecipeConsumer struct {
	factory    *Factory
	listenerID shared.ListenerID
	attached   bool
}

// AttachRecipeConsumer subscribes the policy to a factory
func AttachRecipeConsumer(factory *Factory) *RecipeConsumer {
	rc := &RecipeConsumer{factory: factory, attached: true}
	rc.listenerID = factory.OnRecipeCrafted.Add(rc.onRecipeCrafted)
	return rc
}

func (rc *RecipeConsumer) onRecipeCrafted(event RecipeCrafted) {
	if rc.factory.RemoveRecipe(event.Index) {
		rc.factory.SetSelectedRecipe(event.Index)
	}
}

// Detach stops consuming recipes
func (rc *RecipeConsumer) Detach() {
	if rc.attached {
		rc.factory.OnRecipeCrafted.Remove(rc.listenerID)
		rc.attached = false
	}
}

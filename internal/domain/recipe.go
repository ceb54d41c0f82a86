package domain

// RecipeAttributes is the nested attribute envelope some CMS schema
// versions wrap recipe fields in.
type RecipeAttributes struct {
	Title string `json:"Title"`
}

// RecipeImage is the image metadata attached to a recipe.
type RecipeImage struct {
	URL string `json:"url"`
}

// Recipe is a recipe record as returned by the CMS collaborator. The
// collaborator's schema has varied historically, so both field name
// variants are declared and resolved through the accessor methods. Do
// not read the title or ingredient fields directly; the precedence
// below is pinned by tests.
type Recipe struct {
	DocumentID  string            `json:"documentId"`
	Attributes  *RecipeAttributes `json:"attributes,omitempty"`
	Title       string            `json:"title,omitempty"`
	LegacyTitle string            `json:"Title,omitempty"`
	Ingredient  []IngredientEntry `json:"ingredient,omitempty"`
	Ingredients []IngredientEntry `json:"Ingredients,omitempty"`
	Image       *RecipeImage      `json:"Image,omitempty"`
}

// ResolvedTitle returns the display title, trying attributes.Title,
// then title, then Title, falling back to the empty string.
func (r *Recipe) ResolvedTitle() string {
	if r == nil {
		return ""
	}
	if r.Attributes != nil && r.Attributes.Title != "" {
		return r.Attributes.Title
	}
	if r.Title != "" {
		return r.Title
	}
	return r.LegacyTitle
}

// IngredientList returns the recipe's ingredients, preferring the
// canonical lowercase field and falling back to the legacy one.
func (r *Recipe) IngredientList() []IngredientEntry {
	if r == nil {
		return nil
	}
	if len(r.Ingredient) > 0 {
		return r.Ingredient
	}
	return r.Ingredients
}

// RecipeEnvelope is the response wrapper the CMS puts around a single
// recipe.
type RecipeEnvelope struct {
	Data *Recipe `json:"data"`
}

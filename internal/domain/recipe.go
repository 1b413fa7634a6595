package domain

// Ingredient is a single material requirement of a recipe, matched against
// inventory slots by exact item name. Requirements may be satisfied by
// multiple partial stacks.
type Ingredient struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Recipe maps named ingredient quantities to a result item. Recipes are
// immutable for the process lifetime and looked up by exact name.
type Recipe struct {
	Name           string       `json:"name"`
	Ingredients    []Ingredient `json:"ingredients"`
	ResultKind     Kind         `json:"result_kind"`
	ResultName     string       `json:"result_name"`
	ResultQuantity int          `json:"result_quantity"`
}

package model

// TemplateItem is an item blueprint: name and quantity only.
type TemplateItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// TemplateCategory is a category blueprint.
type TemplateCategory struct {
	Name  string         `json:"name"`
	Items []TemplateItem `json:"items"`
}

// TripTemplate is an immutable blueprint copied at checklist creation.
// Templates carry no item/category IDs; fresh ones are minted per copy.
type TripTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Categories  []TemplateCategory `json:"categories"`
	ImageURL    string             `json:"imageUrl"`
}

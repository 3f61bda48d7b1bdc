package model

// Priority marks how important an item is to pack.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Item is a single packable thing inside a category.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	IsPacked bool     `json:"isPacked"`
	Quantity int      `json:"quantity"`
	Notes    string   `json:"notes,omitempty"`
	Priority Priority `json:"priority,omitempty"`
}

// Category groups items under a name; item order is display order.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Checklist is one trip's packing list.
// Dates are ISO date strings (YYYY-MM-DD); the store never parses them.
type Checklist struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Categories  []Category `json:"categories"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// Clone returns a deep copy, so callers can hand out snapshots
// without aliasing the store's internal state.
func (c Checklist) Clone() Checklist {
	out := c
	out.Categories = make([]Category, len(c.Categories))
	for i, cat := range c.Categories {
		out.Categories[i] = cat.Clone()
	}
	return out
}

// Clone returns a deep copy of the category and its items.
func (c Category) Clone() Category {
	out := c
	out.Items = make([]Item, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

// CloneAll deep-copies a whole collection.
func CloneAll(cls []Checklist) []Checklist {
	out := make([]Checklist, len(cls))
	for i, c := range cls {
		out[i] = c.Clone()
	}
	return out
}

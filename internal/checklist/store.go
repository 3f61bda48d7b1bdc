// Package checklist holds the in-memory checklist collection and its
// mutation/query API. The store is the single writer: every operation
// runs to completion synchronously, and every successful mutation
// persists the full collection through the storage slot.
package checklist

import (
	"log/slog"
	"math"

	"github.com/idilsaglam/packsmart/internal/ident"
	"github.com/idilsaglam/packsmart/internal/images"
	"github.com/idilsaglam/packsmart/internal/model"
	"github.com/idilsaglam/packsmart/internal/storage"
	"github.com/idilsaglam/packsmart/internal/templates"
)

// Store owns the checklist collection. Construct with New; never share
// across goroutines (single-writer by design).
type Store struct {
	slot       storage.Slot
	checklists []model.Checklist
	newID      func() string
}

// New loads the persisted collection once and returns a ready store.
func New(slot storage.Slot) (*Store, error) {
	checklists, err := slot.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		slot:       slot,
		checklists: checklists,
		newID:      ident.NewID,
	}, nil
}

// Checklists returns a deep-copied snapshot in insertion order.
func (s *Store) Checklists() []model.Checklist {
	return model.CloneAll(s.checklists)
}

// Templates returns the fixed template catalog.
func (s *Store) Templates() []model.TripTemplate {
	return templates.List()
}

// CreateChecklist builds a new checklist and returns its id.
// A resolvable templateID seeds categories/items from the template with
// fresh ids throughout; an empty or unknown templateID silently falls
// back to the default skeleton.
func (s *Store) CreateChecklist(name, destination, startDate, endDate, templateID string) string {
	cl := model.Checklist{
		ID:          s.newID(),
		Name:        name,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		ImageURL:    images.Resolve(destination),
	}

	if tpl, ok := templates.Find(templateID); templateID != "" && ok {
		cl.Categories = s.instantiate(tpl)
	} else {
		cl.Categories = s.defaultCategories()
	}

	s.checklists = append(s.checklists, cl)
	s.persist()
	return cl.ID
}

// GetChecklist returns a snapshot of one checklist; ok is false when
// the id is unknown.
func (s *Store) GetChecklist(id string) (model.Checklist, bool) {
	for i := range s.checklists {
		if s.checklists[i].ID == id {
			return s.checklists[i].Clone(), true
		}
	}
	return model.Checklist{}, false
}

// AddCategory appends an empty category. No-op on unknown checklist id.
func (s *Store) AddCategory(checklistID, categoryName string) {
	cl := s.find(checklistID)
	if cl == nil {
		return
	}
	cl.Categories = append(cl.Categories, model.Category{
		ID:    s.newID(),
		Name:  categoryName,
		Items: []model.Item{},
	})
	s.persist()
}

// RemoveCategory removes a category and its items. No-op if either id
// is absent.
func (s *Store) RemoveCategory(checklistID, categoryID string) {
	cl := s.find(checklistID)
	if cl == nil {
		return
	}
	for i := range cl.Categories {
		if cl.Categories[i].ID == categoryID {
			cl.Categories = append(cl.Categories[:i], cl.Categories[i+1:]...)
			s.persist()
			return
		}
	}
}

// AddItem appends an unpacked item to a category. Quantity below 1 is
// clamped to 1. No-op if checklist or category is absent.
func (s *Store) AddItem(checklistID, categoryID, itemName string, quantity int) {
	cat := s.findCategory(checklistID, categoryID)
	if cat == nil {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	cat.Items = append(cat.Items, model.Item{
		ID:       s.newID(),
		Name:     itemName,
		IsPacked: false,
		Quantity: quantity,
	})
	s.persist()
}

// RemoveItem removes an item by id. No-op if any id is absent.
func (s *Store) RemoveItem(checklistID, categoryID, itemID string) {
	cat := s.findCategory(checklistID, categoryID)
	if cat == nil {
		return
	}
	for i := range cat.Items {
		if cat.Items[i].ID == itemID {
			cat.Items = append(cat.Items[:i], cat.Items[i+1:]...)
			s.persist()
			return
		}
	}
}

// ToggleItemPacked flips the packed flag; other fields untouched.
// No-op if any id is absent.
func (s *Store) ToggleItemPacked(checklistID, categoryID, itemID string) {
	it := s.findItem(checklistID, categoryID, itemID)
	if it == nil {
		return
	}
	it.IsPacked = !it.IsPacked
	s.persist()
}

// ItemUpdate holds a partial item mutation; nil fields are left alone.
type ItemUpdate struct {
	Name     *string
	Quantity *int
	Notes    *string
	Priority *model.Priority
	IsPacked *bool
}

// UpdateItem merges the given fields onto the item. Quantity is applied
// verbatim, without the clamp AddItem does; validity is the caller's
// responsibility here. No-op if any id is absent.
func (s *Store) UpdateItem(checklistID, categoryID, itemID string, updates ItemUpdate) {
	it := s.findItem(checklistID, categoryID, itemID)
	if it == nil {
		return
	}
	if updates.Name != nil {
		it.Name = *updates.Name
	}
	if updates.Quantity != nil {
		it.Quantity = *updates.Quantity
	}
	if updates.Notes != nil {
		it.Notes = *updates.Notes
	}
	if updates.Priority != nil {
		it.Priority = *updates.Priority
	}
	if updates.IsPacked != nil {
		it.IsPacked = *updates.IsPacked
	}
	s.persist()
}

// DeleteChecklist removes a checklist from the collection. No-op if
// absent, leaving the persisted form untouched.
func (s *Store) DeleteChecklist(checklistID string) {
	for i := range s.checklists {
		if s.checklists[i].ID == checklistID {
			s.checklists = append(s.checklists[:i], s.checklists[i+1:]...)
			s.persist()
			return
		}
	}
}

// PackedPercentage returns round(100 * packed / total) across all
// categories, and 0 for an unknown checklist or one with no items.
func (s *Store) PackedPercentage(checklistID string) int {
	cl := s.find(checklistID)
	if cl == nil {
		return 0
	}
	total, packed := 0, 0
	for _, cat := range cl.Categories {
		for _, it := range cat.Items {
			total++
			if it.IsPacked {
				packed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(packed) / float64(total) * 100))
}

// ---------------------------------------------------
// internals
// ---------------------------------------------------

func (s *Store) find(checklistID string) *model.Checklist {
	for i := range s.checklists {
		if s.checklists[i].ID == checklistID {
			return &s.checklists[i]
		}
	}
	return nil
}

func (s *Store) findCategory(checklistID, categoryID string) *model.Category {
	cl := s.find(checklistID)
	if cl == nil {
		return nil
	}
	for i := range cl.Categories {
		if cl.Categories[i].ID == categoryID {
			return &cl.Categories[i]
		}
	}
	return nil
}

func (s *Store) findItem(checklistID, categoryID, itemID string) *model.Item {
	cat := s.findCategory(checklistID, categoryID)
	if cat == nil {
		return nil
	}
	for i := range cat.Items {
		if cat.Items[i].ID == itemID {
			return &cat.Items[i]
		}
	}
	return nil
}

// instantiate deep-copies a template, minting fresh ids for every
// category and item. The result shares no identifiers with anything.
func (s *Store) instantiate(tpl model.TripTemplate) []model.Category {
	cats := make([]model.Category, 0, len(tpl.Categories))
	for _, tc := range tpl.Categories {
		items := make([]model.Item, 0, len(tc.Items))
		for _, ti := range tc.Items {
			items = append(items, model.Item{
				ID:       s.newID(),
				Name:     ti.Name,
				IsPacked: false,
				Quantity: ti.Quantity,
			})
		}
		cats = append(cats, model.Category{ID: s.newID(), Name: tc.Name, Items: items})
	}
	return cats
}

func (s *Store) defaultCategories() []model.Category {
	skeleton := []model.TemplateCategory{
		{Name: "Essentials", Items: []model.TemplateItem{
			{Name: "Phone", Quantity: 1},
			{Name: "Wallet", Quantity: 1},
			{Name: "Keys", Quantity: 1},
			{Name: "Charger", Quantity: 1},
		}},
		{Name: "Clothing", Items: []model.TemplateItem{
			{Name: "T-shirts", Quantity: 3},
			{Name: "Pants", Quantity: 2},
			{Name: "Underwear", Quantity: 5},
			{Name: "Socks", Quantity: 5},
		}},
		{Name: "Toiletries", Items: []model.TemplateItem{
			{Name: "Toothbrush", Quantity: 1},
			{Name: "Toothpaste", Quantity: 1},
			{Name: "Shampoo", Quantity: 1},
			{Name: "Deodorant", Quantity: 1},
		}},
		{Name: "Documents", Items: []model.TemplateItem{
			{Name: "Passport", Quantity: 1},
			{Name: "ID Card", Quantity: 1},
			{Name: "Travel Insurance", Quantity: 1},
			{Name: "Hotel Booking", Quantity: 1},
		}},
	}
	return s.instantiate(model.TripTemplate{Categories: skeleton})
}

// persist saves the whole collection. Best effort: a failed save is
// logged, never surfaced as a domain error.
func (s *Store) persist() {
	if err := s.slot.Save(s.checklists); err != nil {
		slog.Warn("persist checklists", "err", err)
	}
}

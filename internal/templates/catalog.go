// Package templates holds the fixed trip template catalog.
// Seed data only; nothing here is mutable at runtime.
package templates

import "github.com/idilsaglam/packsmart/internal/model"

var catalog = []model.TripTemplate{
	{
		ID:          "beach-vacation",
		Name:        "Beach Vacation",
		Description: "Perfect for sunny beach getaways",
		Categories: []model.TemplateCategory{
			{Name: "Clothing", Items: []model.TemplateItem{
				{Name: "Swimsuits", Quantity: 2},
				{Name: "Sunglasses", Quantity: 1},
				{Name: "Flip flops", Quantity: 1},
				{Name: "T-shirts", Quantity: 5},
				{Name: "Shorts", Quantity: 3},
				{Name: "Light dress", Quantity: 2},
				{Name: "Hat", Quantity: 1},
			}},
			{Name: "Toiletries", Items: []model.TemplateItem{
				{Name: "Sunscreen", Quantity: 1},
				{Name: "After-sun lotion", Quantity: 1},
				{Name: "Toothbrush", Quantity: 1},
				{Name: "Toothpaste", Quantity: 1},
				{Name: "Shampoo", Quantity: 1},
				{Name: "Conditioner", Quantity: 1},
			}},
			{Name: "Beach Gear", Items: []model.TemplateItem{
				{Name: "Beach towel", Quantity: 1},
				{Name: "Beach bag", Quantity: 1},
				{Name: "Water bottle", Quantity: 1},
				{Name: "Book", Quantity: 1},
				{Name: "Waterproof phone case", Quantity: 1},
			}},
			{Name: "Essentials", Items: []model.TemplateItem{
				{Name: "Passport", Quantity: 1},
				{Name: "Phone charger", Quantity: 1},
				{Name: "Wallet", Quantity: 1},
				{Name: "Power bank", Quantity: 1},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1473116763249-2faaef81ccda?q=80&w=400&auto=format&fit=crop",
	},
	{
		ID:          "business-trip",
		Name:        "Business Trip",
		Description: "For professional travel and meetings",
		Categories: []model.TemplateCategory{
			{Name: "Clothing", Items: []model.TemplateItem{
				{Name: "Business suits", Quantity: 2},
				{Name: "Dress shirts", Quantity: 3},
				{Name: "Formal shoes", Quantity: 1},
				{Name: "Ties", Quantity: 2},
				{Name: "Belt", Quantity: 1},
				{Name: "Socks", Quantity: 3},
				{Name: "Underwear", Quantity: 3},
			}},
			{Name: "Technology", Items: []model.TemplateItem{
				{Name: "Laptop", Quantity: 1},
				{Name: "Laptop charger", Quantity: 1},
				{Name: "Phone", Quantity: 1},
				{Name: "Phone charger", Quantity: 1},
				{Name: "Headphones", Quantity: 1},
				{Name: "Portable mouse", Quantity: 1},
			}},
			{Name: "Documents", Items: []model.TemplateItem{
				{Name: "Business cards", Quantity: 10},
				{Name: "Notebook", Quantity: 1},
				{Name: "Pen", Quantity: 2},
				{Name: "Passport", Quantity: 1},
				{Name: "ID Card", Quantity: 1},
				{Name: "Hotel booking", Quantity: 1},
			}},
			{Name: "Toiletries", Items: []model.TemplateItem{
				{Name: "Toothbrush", Quantity: 1},
				{Name: "Toothpaste", Quantity: 1},
				{Name: "Deodorant", Quantity: 1},
				{Name: "Razor", Quantity: 1},
				{Name: "Hair products", Quantity: 1},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1520333789090-1afc82db536a?q=80&w=400&auto=format&fit=crop",
	},
	{
		ID:          "camping-trip",
		Name:        "Camping Trip",
		Description: "For outdoor adventures in nature",
		Categories: []model.TemplateCategory{
			{Name: "Shelter & Sleep", Items: []model.TemplateItem{
				{Name: "Tent", Quantity: 1},
				{Name: "Sleeping bag", Quantity: 1},
				{Name: "Pillow", Quantity: 1},
				{Name: "Sleeping pad", Quantity: 1},
				{Name: "Tarp", Quantity: 1},
			}},
			{Name: "Cooking & Food", Items: []model.TemplateItem{
				{Name: "Cooler", Quantity: 1},
				{Name: "Portable stove", Quantity: 1},
				{Name: "Cooking fuel", Quantity: 1},
				{Name: "Cooking pot", Quantity: 1},
				{Name: "Pan", Quantity: 1},
				{Name: "Utensils", Quantity: 1},
				{Name: "Water bottle", Quantity: 1},
			}},
			{Name: "Clothing", Items: []model.TemplateItem{
				{Name: "Hiking boots", Quantity: 1},
				{Name: "Warm jacket", Quantity: 1},
				{Name: "Pants", Quantity: 2},
				{Name: "T-shirts", Quantity: 3},
				{Name: "Long sleeve shirts", Quantity: 2},
				{Name: "Warm hat", Quantity: 1},
				{Name: "Wool socks", Quantity: 3},
			}},
			{Name: "Tools & Safety", Items: []model.TemplateItem{
				{Name: "Pocket knife", Quantity: 1},
				{Name: "Flashlight", Quantity: 1},
				{Name: "Extra batteries", Quantity: 1},
				{Name: "First aid kit", Quantity: 1},
				{Name: "Map", Quantity: 1},
				{Name: "Compass", Quantity: 1},
				{Name: "Fire starter", Quantity: 1},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1517824806704-9040b037703b?q=80&w=400&auto=format&fit=crop",
	},
	{
		ID:          "international-trip",
		Name:        "International Trip",
		Description: "For traveling abroad",
		Categories: []model.TemplateCategory{
			{Name: "Important Documents", Items: []model.TemplateItem{
				{Name: "Passport", Quantity: 1},
				{Name: "Visa", Quantity: 1},
				{Name: "Travel insurance", Quantity: 1},
				{Name: "Flight tickets", Quantity: 1},
				{Name: "Hotel reservations", Quantity: 1},
				{Name: "International driving permit", Quantity: 1},
				{Name: "Vaccination records", Quantity: 1},
			}},
			{Name: "Health & Safety", Items: []model.TemplateItem{
				{Name: "Medications", Quantity: 1},
				{Name: "First aid kit", Quantity: 1},
				{Name: "Hand sanitizer", Quantity: 1},
				{Name: "Face masks", Quantity: 5},
				{Name: "Travel adapters", Quantity: 2},
				{Name: "Travel insurance info", Quantity: 1},
			}},
			{Name: "Technology", Items: []model.TemplateItem{
				{Name: "Phone", Quantity: 1},
				{Name: "Phone charger", Quantity: 1},
				{Name: "Camera", Quantity: 1},
				{Name: "Camera charger", Quantity: 1},
				{Name: "Power bank", Quantity: 1},
				{Name: "Travel adapter", Quantity: 1},
			}},
			{Name: "Clothing", Items: []model.TemplateItem{
				{Name: "Weather appropriate clothes", Quantity: 1},
				{Name: "Comfortable walking shoes", Quantity: 1},
				{Name: "Formal outfit", Quantity: 1},
				{Name: "Sleepwear", Quantity: 1},
				{Name: "Underwear", Quantity: 7},
				{Name: "Socks", Quantity: 7},
			}},
		},
		ImageURL: "https://images.unsplash.com/photo-1488646953014-85cb44e25828?q=80&w=400&auto=format&fit=crop",
	},
}

// List returns the full catalog in declaration order.
func List() []model.TripTemplate {
	return catalog
}

// Find looks up a template by id. ok is false when unknown.
func Find(id string) (model.TripTemplate, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return model.TripTemplate{}, false
}

package models

// Category is a static listing category label. Not persisted; listings store
// the label itself.
type Category struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var Categories = []Category{
	{Label: "Beach", Description: "This property is close to the beach!"},
	{Label: "Windmills", Description: "This property has windmills!"},
	{Label: "Modern", Description: "This property is modern!"},
	{Label: "Countryside", Description: "This property is in the countryside!"},
	{Label: "Pools", Description: "This property has a beautiful pool!"},
	{Label: "Islands", Description: "This property is on an island!"},
	{Label: "Lake", Description: "This property is near a lake!"},
	{Label: "Skiing", Description: "This property has skiing activities!"},
	{Label: "Castles", Description: "This property is an ancient castle!"},
	{Label: "Caves", Description: "This property is in a spooky cave!"},
	{Label: "Camping", Description: "This property offers camping activities!"},
	{Label: "Arctic", Description: "This property is in an arctic environment!"},
	{Label: "Desert", Description: "This property is in the desert!"},
	{Label: "Barns", Description: "This property is in a barn!"},
	{Label: "Lux", Description: "This property is brand new and luxurious!"},
}

// ValidCategory reports whether label is one of the catalog categories.
func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c.Label == label {
			return true
		}
	}
	return false
}

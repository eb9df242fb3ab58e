package model

// GroceryItem is a named entry of a grocery list. Name identifies the item within its list.
type GroceryItem struct {
	Name      string `json:"name" bson:"name" firestore:"name"`
	Quantity  int    `json:"quantity" bson:"quantity" firestore:"quantity"`
	Purchased bool   `json:"purchased" bson:"purchased" firestore:"purchased"`
}

// GroceryList is one document in the grocery_lists collection.
// ID is assigned by the store on creation and rendered in its canonical string form.
type GroceryList struct {
	ID    string        `json:"id" bson:"-" firestore:"-"`
	Title string        `json:"title" bson:"title" firestore:"title"`
	Items []GroceryItem `json:"items" bson:"items" firestore:"items"`
}

// Clone returns a deep copy of l so callers can mutate the result freely.
func (l *GroceryList) Clone() *GroceryList {
	if l == nil {
		return nil
	}
	out := *l
	out.Items = CloneItems(l.Items)
	return &out
}

// CloneItems copies items, normalising nil to an empty slice so lists always encode as [].
func CloneItems(items []GroceryItem) []GroceryItem {
	out := make([]GroceryItem, len(items))
	copy(out, items)
	return out
}

// ItemCount returns how many items named name are present.
func (l *GroceryList) ItemCount(name string) int {
	n := 0
	for _, it := range l.Items {
		if it.Name == name {
			n++
		}
	}
	return n
}

// SetPurchased sets Purchased on the first item named name.
// It reports false when no item matches.
func SetPurchased(items []GroceryItem, name string, purchased bool) bool {
	for i := range items {
		if items[i].Name == name {
			items[i].Purchased = purchased
			return true
		}
	}
	return false
}

// RemoveItems returns items without every entry named name and how many were removed.
func RemoveItems(items []GroceryItem, name string) ([]GroceryItem, int) {
	out := make([]GroceryItem, 0, len(items))
	removed := 0
	for _, it := range items {
		if it.Name == name {
			removed++
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

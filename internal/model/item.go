package model

// Item is a single menu entry. Values are copied around freely; nothing
// mutates an Item once it has been created.
type Item struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// NewItem builds an Item.
func NewItem(name string, price int) Item {
	return Item{Name: name, Price: price}
}

package models

import (
	"encoding/json"
	"fmt"
)

// ListItemKind discriminates the values a ListItem can hold
type ListItemKind int

const (
	ListItemProduct ListItemKind = iota
	ListItemSubCategory
)

// String returns the wire name of the kind
func (k ListItemKind) String() string {
	switch k {
	case ListItemProduct:
		return "product"
	case ListItemSubCategory:
		return "subcategory"
	default:
		return fmt.Sprintf("ListItemKind(%d)", int(k))
	}
}

// ListItem is one entry of a projected display list: either a product or a
// subcategory header placed right before the first product of its section.
type ListItem struct {
	Kind        ListItemKind
	Product     Product
	SubCategory SubCategory
}

// ProductItem wraps a product into a list item
func ProductItem(p Product) ListItem {
	return ListItem{Kind: ListItemProduct, Product: p}
}

// HeaderItem wraps a subcategory header into a list item
func HeaderItem(s SubCategory) ListItem {
	return ListItem{Kind: ListItemSubCategory, SubCategory: s}
}

// IsProduct reports whether the item holds a product
func (i ListItem) IsProduct() bool {
	return i.Kind == ListItemProduct
}

type listItemJSON struct {
	Type        string       `json:"type"`
	Product     *Product     `json:"product,omitempty"`
	SubCategory *SubCategory `json:"subcategory,omitempty"`
}

// MarshalJSON encodes the item with an explicit "type" discriminator
func (i ListItem) MarshalJSON() ([]byte, error) {
	out := listItemJSON{Type: i.Kind.String()}
	switch i.Kind {
	case ListItemProduct:
		p := i.Product
		out.Product = &p
	case ListItemSubCategory:
		s := i.SubCategory
		out.SubCategory = &s
	default:
		return nil, fmt.Errorf("unknown list item kind: %d", int(i.Kind))
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an item produced by MarshalJSON
func (i *ListItem) UnmarshalJSON(data []byte) error {
	var in listItemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Type {
	case "product":
		if in.Product == nil {
			return fmt.Errorf("list item of type product has no product")
		}
		*i = ProductItem(*in.Product)
	case "subcategory":
		if in.SubCategory == nil {
			return fmt.Errorf("list item of type subcategory has no subcategory")
		}
		*i = HeaderItem(*in.SubCategory)
	default:
		return fmt.Errorf("unknown list item type: %q", in.Type)
	}
	return nil
}

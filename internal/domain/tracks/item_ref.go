package tracks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ItemType names the content store a track item points into.
type ItemType string

const (
	ItemTypeArticle ItemType = "article"
	ItemTypeLesson  ItemType = "lesson"
	ItemTypeTool    ItemType = "tool"
)

var itemTypes = []ItemType{ItemTypeArticle, ItemTypeLesson, ItemTypeTool}

// ItemTypes returns the closed set of supported item types.
func ItemTypes() []ItemType {
	out := make([]ItemType, len(itemTypes))
	copy(out, itemTypes)
	return out
}

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeArticle, ItemTypeLesson, ItemTypeTool:
		return true
	default:
		return false
	}
}

func (t ItemType) String() string { return string(t) }

// ParseItemType normalizes raw input and rejects anything outside the closed set.
func ParseItemType(raw string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown item type %q", raw)
	}
	return t, nil
}

// ItemRef is a typed reference to one content row.
type ItemRef struct {
	Type ItemType
	ID   uuid.UUID
}

func (r ItemRef) String() string {
	return string(r.Type) + ":" + r.ID.String()
}

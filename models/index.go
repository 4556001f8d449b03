package models

// Index is the event payload emitted to the indexing worker.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
	City       string `json:"city,omitempty"`
}

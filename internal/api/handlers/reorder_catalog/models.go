package reorder_catalog

// ReorderRequest HTTP request model
// OrderedIDs — полный список id коллекции в новом порядке
type ReorderRequest struct {
	OrderedIDs []int64 `json:"orderedIds"`
}

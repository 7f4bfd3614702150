package models

// CardPayload identifies a dragged card by its column and position in that column.
type CardPayload struct {
	ColumnIndex int `json:"columnIndex"`
	ItemIndex   int `json:"itemIndex"`
}

// ColumnPayload identifies a dragged column.
type ColumnPayload struct {
	ColumnIndex int `json:"columnIndex"`
}

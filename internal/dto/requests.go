package dto

// UpdateFieldRequest represents a single user input transition: either a
// string value for text/select fields or a checked flag for checkboxes.
type UpdateFieldRequest struct {
	Name    string  `json:"name" binding:"required"`
	Value   *string `json:"value"`
	Checked *bool   `json:"checked"`
}

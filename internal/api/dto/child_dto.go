package dto

// CreateChildRequest payload for adding a child record.
type CreateChildRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Age  *int   `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
}

// UpdateChildRequest is a partial child patch.
type UpdateChildRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age  *int    `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
}

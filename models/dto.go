package models

type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=2,max=80"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Quantity is a pointer so that an omitted quantity can default to 1 while an
// explicit zero or negative value is rejected.
type AddCartItemRequest struct {
	ProductID int  `json:"product_id" form:"product_id" binding:"required"`
	Quantity  *int `json:"quantity" form:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gte=0"`
	Stock       int     `json:"stock" form:"stock" binding:"gte=0"`
}

// Pointer fields distinguish "omitted" from an explicit zero, so a partial
// update never resets stock or price, and a price of 0 can be set on purpose.
type UpdateProductRequest struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" form:"stock" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active" form:"is_active"`
}

// ProductQuery carries the catalog list filters parsed from the query string.
type ProductQuery struct {
	Search   string
	Sort     string
	MinPrice float64
	MaxPrice float64
	Page     int
	Limit    int
}

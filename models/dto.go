package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=customer admin"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
	Slug string `json:"slug" form:"slug"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" form:"name"`
	Slug *string `json:"slug" form:"slug"`
}

// Price travels as a string so fixed-point values survive the wire
// without float rounding.
type CreateProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price" binding:"required"`
	CategoryID  *int   `json:"category_id" form:"category_id"`
	Slug        string `json:"slug" form:"slug"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Price       *string `json:"price" form:"price"`
	CategoryID  *int    `json:"category_id" form:"category_id"`
	Slug        *string `json:"slug" form:"slug"`
}

type GetOrCreateCartRequest struct {
	CartCode string `json:"cart_code" form:"cart_code"`
}

type AddCartItemRequest struct {
	ProductID int  `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CreateReviewRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
	Debug   string `json:"debug,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type idResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"_id"`
}

// --- Users ---

type registerRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname"  validate:"required"`
	Username  string `json:"username"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// loginRequest identifies the account by username or, failing that, email.
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success     bool     `json:"success"`
	User        userView `json:"user"`
	AccessToken string   `json:"accessToken"`
}

type updateUserRequest struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Username  *string `json:"username"`
	Email     *string `json:"email"    validate:"omitempty,email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"     validate:"omitempty,oneof=user admin"`
	Status    *string `json:"status"   validate:"omitempty,oneof=active disabled"`
}

type userResponse struct {
	Success bool     `json:"success"`
	User    userView `json:"user"`
}

type userView struct {
	ID        string    `json:"_id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// --- Courses ---

type createCourseRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Content     []string `json:"content"     validate:"required,min=1"`
	Tools       []string `json:"tools"`
}

type updateCourseRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Content     *[]string `json:"content"`
	Tools       *[]string `json:"tools"`
}

type courseView struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Content     []string `json:"content"`
	Tools       []string `json:"tools"`
}

// --- Images ---

type createImageRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url"         validate:"required"`
}

type updateImageRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type imageView struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// --- Pagination ---

type pageMeta struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	NextPage    *int  `json:"nextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	PrevPage    *int  `json:"prevPage"`
}

type userPageResponse struct {
	pageMeta
	Items []userView `json:"items"`
}

// imagePageResponse items are imageView objects, reduced to the selected
// fields when a projection was requested.
type imagePageResponse struct {
	pageMeta
	Items []any `json:"items"`
}

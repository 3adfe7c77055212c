package client

import "time"

type User struct {
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

type Course struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Content     []string `json:"content"`
	Tools       []string `json:"tools"`
}

// Image fields are zero when a list projection left them out.
type Image struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Page is the navigation block shared by paginated listings.
type Page struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	NextPage    *int  `json:"nextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	PrevPage    *int  `json:"prevPage"`
}

type UserPage struct {
	Page
	Items []User `json:"items"`
}

type ImagePage struct {
	Page
	Items []Image `json:"items"`
}

type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest identifies the account by Username or, when empty, Email.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// UserUpdate sends only the non-nil fields. Role and Status require an admin.
type UserUpdate struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *string `json:"role,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type CourseInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Content     []string `json:"content"`
	Tools       []string `json:"tools,omitempty"`
}

type CourseUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *[]string `json:"content,omitempty"`
	Tools       *[]string `json:"tools,omitempty"`
}

type ImageInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

type ImageUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// ImageQuery holds the GET /images parameters. Zero values are omitted and
// take the server defaults.
type ImageQuery struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Select []string
	Search string
	User   string
}

type idResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"_id"`
}

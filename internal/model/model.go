// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior lives in status.go.
package model

import "time"

// Category groups models on the public site.
type Category string

const (
	CategoryAll      Category = "ALL"
	CategoryInTown   Category = "INTOWN"
	CategoryUpcoming Category = "UPCOMING"
)

// Model is a talent profile shown on the public site.
type Model struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Category     Category  `json:"category"`
	Nationality  *string   `json:"nationality"`
	ProfileImage *string   `json:"profileImage"`
	Images       []string  `json:"images"`
	Bio          *string   `json:"bio"`
	Height       *string   `json:"height"`
	Measurements *string   `json:"measurements"`
	Instagram    *string   `json:"instagram"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Archives is only populated on the detail view.
	Archives []Archive `json:"archives,omitempty"`
}

// ModelSummary is the slice of a model embedded into archive responses.
type ModelSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// Archive is a portfolio shoot attached to a model.
type Archive struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Brand     *string       `json:"brand"`
	Images    []string      `json:"images"`
	ModelID   string        `json:"modelId"`
	Model     *ModelSummary `json:"model,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Application is a model application submitted from the public form.
type Application struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Age       int               `json:"age"`
	Height    string            `json:"height"`
	Weight    string            `json:"weight"`
	Instagram *string           `json:"instagram"`
	Portfolio []string          `json:"portfolio"`
	Message   *string           `json:"message"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Casting is a casting request submitted by a client company.
type Casting struct {
	ID          string        `json:"id"`
	Company     string        `json:"company"`
	ContactName string        `json:"contactName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ProjectType string        `json:"projectType"`
	Description string        `json:"description"`
	Budget      *string       `json:"budget"`
	ShootDate   *time.Time    `json:"shootDate"`
	Status      CastingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Admin is a back-office account. The password hash never leaves the process.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

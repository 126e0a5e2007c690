// Package types holds response shapes shared by HTTP and end-to-end tests.
package types

// HealthResponse is the body served on the health route
type HealthResponse struct {
	Status string `json:"status"`
}


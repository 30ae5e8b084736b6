package models

// CreateProjectInput contains fields for registering a project.
type CreateProjectInput struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

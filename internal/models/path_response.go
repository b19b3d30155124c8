package models

import "waypath-be/internal/entities"

// SavePathResponse represents the response after a path is stored
type SavePathResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// ListPathsResponse wraps the path listing
type ListPathsResponse struct {
	Items []*entities.Path `json:"items"`
}

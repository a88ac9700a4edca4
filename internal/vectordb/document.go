package vectordb

import "time"

// ClusterType says which correlation view a document was rendered from.
type ClusterType string

const (
	ClusterTask     ClusterType = "task"
	ClusterEmployee ClusterType = "employee"
)

// Document represents one profile chunk to be stored and searched.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds structured information about a profile chunk.
type DocumentMetadata struct {
	ClusterType ClusterType
	ClusterKey  string // task ID or person identifier
	ChunkIndex  int
	ContentHash string
	LastUpdated time.Time
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter narrows search results by metadata fields.
type SearchFilter struct {
	ClusterType *ClusterType
	ClusterKey  *string
}

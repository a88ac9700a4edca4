package chunker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/teamlens/teamlens/internal/cluster"
	"github.com/teamlens/teamlens/internal/vectordb"
)

// Options controls fragment sizing.
type Options struct {
	ChunkSize    int
	ChunkOverlap int
}

// TaskDocuments renders and splits every task cluster into vector store
// documents tagged with the task corpus type.
func TaskDocuments(clusters []cluster.TaskCluster, opts Options) []vectordb.Document {
	var docs []vectordb.Document
	now := time.Now()

	for _, c := range clusters {
		text := RenderTaskCluster(c)
		docs = append(docs, buildDocuments(vectordb.ClusterTask, c.TaskID, text, opts, now)...)
	}
	return docs
}

// EmployeeDocuments renders and splits every employee cluster into vector
// store documents tagged with the employee corpus type.
func EmployeeDocuments(clusters []cluster.EmployeeCluster, opts Options) []vectordb.Document {
	var docs []vectordb.Document
	now := time.Now()

	for _, c := range clusters {
		text := RenderEmployeeCluster(c)
		docs = append(docs, buildDocuments(vectordb.ClusterEmployee, c.Person, text, opts, now)...)
	}
	return docs
}

func buildDocuments(clusterType vectordb.ClusterType, key, text string, opts Options, now time.Time) []vectordb.Document {
	hash := contentHash(text)
	chunks := Split(text, opts.ChunkSize, opts.ChunkOverlap)

	docs := make([]vectordb.Document, 0, len(chunks))
	for i, chunk := range chunks {
		docs = append(docs, vectordb.Document{
			ID:      fmt.Sprintf("%s:%s:%d", clusterType, key, i),
			Content: chunk,
			Metadata: vectordb.DocumentMetadata{
				ClusterType: clusterType,
				ClusterKey:  key,
				ChunkIndex:  i,
				ContentHash: hash,
				LastUpdated: now,
			},
		})
	}
	return docs
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

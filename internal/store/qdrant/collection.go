package qdrant

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// placeholderVector is stored on every point; Qdrant requires one
var placeholderVector = []float32{1}

// ensureCollection creates the collection and its payload indexes once per process
func (s *Store) ensureCollection(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ensured[name] {
		return nil
	}

	exists, err := s.qdrant.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if !exists {
		err = s.qdrant.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: name,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(len(placeholderVector)),
				Distance: qdrant.Distance_Dot,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		// Payload indexes let operators filter in the Qdrant console
		indexes := []struct {
			field     string
			fieldType qdrant.FieldType
		}{
			{fieldStatus, qdrant.FieldType_FieldTypeKeyword},
			{fieldPriority, qdrant.FieldType_FieldTypeKeyword},
			{fieldAssignedTo, qdrant.FieldType_FieldTypeKeyword},
		}

		for _, idx := range indexes {
			_, err = s.qdrant.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
				CollectionName: name,
				FieldName:      idx.field,
				FieldType:      qdrant.PtrOf(idx.fieldType),
			})
			if err != nil {
				return fmt.Errorf("failed to create index for %s: %w", idx.field, err)
			}
		}
	}

	s.ensured[name] = true
	return nil
}

// collectionExists checks without creating
func (s *Store) collectionExists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	known := s.ensured[name]
	s.mu.Unlock()
	if known {
		return true, nil
	}

	exists, err := s.qdrant.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check collection: %w", err)
	}
	return exists, nil
}

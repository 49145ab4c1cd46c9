package firestore

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"imovel/internal/domain/property"
)

const propertiesCollection = "properties"

// PropertyRepository implements property.Repository on Firestore. Property
// documents use store-generated keys; the id lives only in the document key.
type PropertyRepository struct {
	client *Client
}

func NewPropertyRepository(client *Client) *PropertyRepository {
	return &PropertyRepository{client: client}
}

// List returns all properties. An empty store is seeded with the two default
// properties first, so a fresh deployment always has a usable scope.
func (r *PropertyRepository) List(ctx context.Context) ([]*property.Property, error) {
	iter := r.client.fs.Collection(propertiesCollection).Documents(ctx)
	defer iter.Stop()

	var out []*property.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list properties: %w", err)
		}

		var p property.Property
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode property %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		out = append(out, &p)
	}

	if len(out) == 0 {
		return r.seedDefaults(ctx)
	}
	return out, nil
}

func (r *PropertyRepository) seedDefaults(ctx context.Context) ([]*property.Property, error) {
	log.Println("Property store is empty, seeding defaults")

	seeded := make([]*property.Property, 0, len(property.DefaultNames))
	for _, name := range property.DefaultNames {
		p, err := r.Create(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to seed default property %q: %w", name, err)
		}
		seeded = append(seeded, p)
	}
	return seeded, nil
}

func (r *PropertyRepository) Create(ctx context.Context, name string) (*property.Property, error) {
	ref := r.client.fs.Collection(propertiesCollection).NewDoc()
	if _, err := ref.Set(ctx, map[string]interface{}{"name": name}); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return &property.Property{ID: ref.ID, Name: name}, nil
}

func (r *PropertyRepository) Rename(ctx context.Context, id, name string) error {
	ref := r.client.fs.Collection(propertiesCollection).Doc(id)
	if _, err := ref.Update(ctx, []firestore.Update{{Path: "name", Value: name}}); err != nil {
		return fmt.Errorf("failed to rename property %s: %w", id, err)
	}
	return nil
}

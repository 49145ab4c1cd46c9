package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"imovel/internal/domain/property"
)

// MockPropertyRepo implements property.Repository for testing
type MockPropertyRepo struct {
	ListFunc   func(ctx context.Context) ([]*property.Property, error)
	CreateFunc func(ctx context.Context, name string) (*property.Property, error)
	RenameFunc func(ctx context.Context, id, name string) error
}

func (m *MockPropertyRepo) List(ctx context.Context) ([]*property.Property, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockPropertyRepo) Create(ctx context.Context, name string) (*property.Property, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name)
	}
	return &property.Property{ID: "prop-new", Name: name}, nil
}

func (m *MockPropertyRepo) Rename(ctx context.Context, id, name string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(ctx, id, name)
	}
	return nil
}

func loadedPropertyService(t *testing.T, repo *MockPropertyRepo, props ...*property.Property) *property.Service {
	t.Helper()

	listFunc := repo.ListFunc
	repo.ListFunc = func(ctx context.Context) ([]*property.Property, error) {
		if listFunc != nil {
			return listFunc(ctx)
		}
		return props, nil
	}

	svc := property.NewService(repo)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return svc
}

func TestHandleProperties_List(t *testing.T) {
	svc := loadedPropertyService(t, &MockPropertyRepo{},
		&property.Property{ID: "prop-1", Name: "Apartamento Centro"},
		&property.Property{ID: "prop-2", Name: "Casa de Praia"},
	)
	handler := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/properties/", nil)
	rec := httptest.NewRecorder()
	handler.HandleProperties(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got []*property.Property
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestHandleProperties_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid name",
			body:           `{"name":"Sítio"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty name",
			body:           `{"name":""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := loadedPropertyService(t, &MockPropertyRepo{})
			handler := NewPropertyHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/properties/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.HandleProperties(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.expectedStatus, rec.Body.String())
			}
		})
	}
}

func TestHandlePropertyByID_Rename(t *testing.T) {
	svc := loadedPropertyService(t, &MockPropertyRepo{},
		&property.Property{ID: "prop-1", Name: "Apartamento Centro"},
	)
	handler := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/properties/prop-1", bytes.NewBufferString(`{"name":"Apartamento Novo"}`))
	req.SetPathValue("id", "prop-1")
	rec := httptest.NewRecorder()
	handler.HandlePropertyByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var renamed property.Property
	if err := json.NewDecoder(rec.Body).Decode(&renamed); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if renamed.Name != "Apartamento Novo" {
		t.Errorf("Name = %q, want Apartamento Novo", renamed.Name)
	}
}

func TestHandlePropertyByID_RenameNotFound(t *testing.T) {
	svc := loadedPropertyService(t, &MockPropertyRepo{})
	handler := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/properties/ghost", bytes.NewBufferString(`{"name":"Qualquer"}`))
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()
	handler.HandlePropertyByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/carparts/carparts-api/internal/core/domain"
)

const partID = "64b7f0c2a1b2c3d4e5f60718"

func TestPartHandler_List(t *testing.T) {
	stub := &stubPartService{
		listFn: func(ctx context.Context) ([]domain.Document, error) {
			return []domain.Document{{"_id": partID, "name": "brake pad"}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/part", "")

	if err := NewPartHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "brake pad" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPartHandler_Get_NotFoundIsEmpty(t *testing.T) {
	stub := &stubPartService{
		getFn: func(ctx context.Context, id string) (domain.Document, error) {
			if id != partID {
				t.Fatalf("unexpected id %q", id)
			}
			return nil, domain.ErrNotFound
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/part/"+partID, "")
	c.SetParamNames("id")
	c.SetParamValues(partID)

	if err := NewPartHandler(stub).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestPartHandler_Get_InvalidIDPropagates(t *testing.T) {
	stub := &stubPartService{
		getFn: func(ctx context.Context, id string) (domain.Document, error) {
			return nil, domain.ErrInvalidID
		},
	}
	c, _ := newJSONContext(http.MethodGet, "/part/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := NewPartHandler(stub).Get(c); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestPartHandler_Create(t *testing.T) {
	stub := &stubPartService{
		createFn: func(ctx context.Context, part domain.Document) (*domain.InsertResult, error) {
			if part["name"] != "rotor" || part["price"] != int64(80) {
				t.Fatalf("unexpected part: %+v", part)
			}
			return &domain.InsertResult{Acknowledged: true, InsertedID: partID}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/part", `{"name":"rotor","price":80}`)

	if err := NewPartHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp domain.InsertResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Acknowledged || resp.InsertedID != partID {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPartHandler_Delete(t *testing.T) {
	stub := &stubPartService{
		deleteFn: func(ctx context.Context, id string) (*domain.DeleteResult, error) {
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		},
	}
	c, rec := newJSONContext(http.MethodDelete, "/part/"+partID, "")
	c.SetParamNames("id")
	c.SetParamValues(partID)

	if err := NewPartHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPartHandler_UpdateQuantity(t *testing.T) {
	stub := &stubPartService{
		updateFn: func(ctx context.Context, id string, qty any) (*domain.UpdateResult, error) {
			if id != partID || qty != int64(7) {
				t.Fatalf("unexpected args: %s %v", id, qty)
			}
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPut, "/part/"+partID, `{"deliveredQuantity":7}`)
	c.SetParamNames("id")
	c.SetParamValues(partID)

	if err := NewPartHandler(stub).UpdateQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp domain.UpdateResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ModifiedCount != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

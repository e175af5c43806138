package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// bindDocument decodes a schemaless JSON object body. Integers are kept as
// int64 and other numbers as float64 so they round-trip through the store
// with their original type. An empty body or a JSON null yields an empty
// document.
func bindDocument(c echo.Context) (domain.Document, error) {
	body := c.Request().Body
	if body == nil || body == http.NoBody {
		return domain.Document{}, nil
	}

	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Document{}, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if raw == nil {
		return domain.Document{}, nil
	}

	for k, v := range raw {
		raw[k] = normalizeNumber(v)
	}
	return domain.Document(raw), nil
}

func normalizeNumber(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, x := range t {
			t[k] = normalizeNumber(x)
		}
		return t
	case []any:
		for i, x := range t {
			t[i] = normalizeNumber(x)
		}
		return t
	default:
		return v
	}
}

// sendDocument writes doc, or an empty 200 body when it was not found.
func sendDocument(c echo.Context, doc domain.Document, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.NoContent(http.StatusOK)
		}
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

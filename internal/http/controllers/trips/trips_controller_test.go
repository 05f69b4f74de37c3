package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/pf-zambom-back/internal/http/dto/trips"
	svc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/trips"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

// fakeRepo implementa core.TripRepository en memoria.
type fakeRepo struct {
	items []core.Trip
	seq   int
}

func (f *fakeRepo) ListTrips(ctx context.Context) ([]core.Trip, error) {
	return f.items, nil
}

func (f *fakeRepo) CreateTrip(ctx context.Context, tr *core.Trip) error {
	f.seq++
	tr.ID = fmt.Sprintf("65f000000000000000000%03d", f.seq)
	f.items = append(f.items, *tr)
	return nil
}

func (f *fakeRepo) DeleteTrip(ctx context.Context, id string) error {
	if id == "no-es-un-oid" {
		return core.ErrInvalidID
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func newTestRouter(repo *fakeRepo) http.Handler {
	c := NewController(svc.NewService(repo))
	r := chi.NewRouter()
	r.Get("/trips", c.List)
	r.Post("/trips", c.Create)
	r.Delete("/trips/{id}", c.Delete)
	return r
}

func decodeError(t *testing.T, body string) string {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		t.Fatalf("body no es JSON: %q", body)
	}
	s, _ := m["error"].(string)
	return s
}

func TestListEmptyReturnsArray(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trips", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, quiero []", got)
	}
}

func TestCreateParsesDates(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body := `{"titulo":"Río","destino":"Brasil","data_inicio":"2026-01-10","data_fim":"2026-01-20","preco":2500}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created["_id"] == "" || created["_id"] == nil {
		t.Error("falta _id en la respuesta")
	}
	inicio, _ := created["data_inicio"].(string)
	if !strings.HasPrefix(inicio, "2026-01-10T00:00:00") {
		t.Errorf("data_inicio = %q", inicio)
	}
	if created["preco"] != 2500.0 {
		t.Errorf("preco = %v", created["preco"])
	}
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"falta destino", `{"titulo":"Río","data_inicio":"2026-01-10","data_fim":"2026-01-20","preco":2500}`, dto.MsgRequired},
		{"fecha en otro formato", `{"titulo":"Río","destino":"Brasil","data_inicio":"10/01/2026","data_fim":"2026-01-20","preco":2500}`, dto.MsgFormato},
		{"precio no numérico", `{"titulo":"Río","destino":"Brasil","data_inicio":"2026-01-10","data_fim":"2026-01-20","preco":"caro"}`, dto.MsgFormato},
	}

	router := newTestRouter(&fakeRepo{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(tc.body)))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := decodeError(t, rec.Body.String()); got != tc.wantMsg {
				t.Errorf("error = %q, quiero %q", got, tc.wantMsg)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{items: []core.Trip{{ID: "65f0000000000000000002aa", Titulo: "Río"}}}
	router := newTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/trips/65f0000000000000000002bb", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec.Body.String()); got != "Viagem não encontrada" {
		t.Errorf("error = %q", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/trips/no-es-un-oid", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec.Body.String()); got != "ID inválido" {
		t.Errorf("error = %q", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/trips/65f0000000000000000002aa", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var m map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if m["message"] != "Viagem removida" {
		t.Errorf("message = %q", m["message"])
	}
}

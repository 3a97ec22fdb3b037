package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

// memStore is an in-memory Store used to exercise the service without a
// database.  It counts writes so tests can assert that failed
// validations never reach persistence.
type memStore struct {
	clients      map[string]model.Client
	reservations map[string]model.Reservation
	saves        int
	updates      int
}

func newMemStore() *memStore {
	return &memStore{
		clients:      map[string]model.Client{},
		reservations: map[string]model.Reservation{},
	}
}

func (m *memStore) GetClient(_ context.Context, id string) (model.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return model.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (m *memStore) SaveReservation(_ context.Context, r model.Reservation) error {
	m.saves++
	m.reservations[r.ID] = r
	return nil
}

func (m *memStore) GetReservation(_ context.Context, id string) (model.Reservation, error) {
	r, ok := m.reservations[id]
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	return r, nil
}

func (m *memStore) ListReservations(_ context.Context) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) ListReservationsByClient(_ context.Context, clientID string) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range m.reservations {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) ListReservationsByProperty(_ context.Context, propertyID string) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range m.reservations {
		if r.ForProperty(propertyID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) UpdateReservation(_ context.Context, r model.Reservation) error {
	if _, ok := m.reservations[r.ID]; !ok {
		return ErrReservationNotFound
	}
	m.updates++
	m.reservations[r.ID] = r
	return nil
}

func (m *memStore) DeleteReservation(_ context.Context, id string) error {
	if _, ok := m.reservations[id]; !ok {
		return ErrReservationNotFound
	}
	delete(m.reservations, id)
	return nil
}

// newTestService wires a service with a fixed clock and sequential IDs.
func newTestService(store *memStore) *Service {
	n := 0
	return NewService(store,
		func() time.Time { return testNow },
		func() string { n++; return fmt.Sprintf("res-%d", n) },
	)
}

func seedClient(store *memStore) {
	store.clients["client-1"] = model.Client{
		ID:    "client-1",
		Name:  "Dana Wolfe",
		Email: "dana@example.com",
	}
}

func validCreate() CreateRequest {
	return CreateRequest{
		ClientID:   "client-1",
		PropertyID: strptr("prop-1"),
		StartDate:  days(2),
		EndDate:    days(5),
		TimeOfDay:  "14:00",
		Guests:     3,
	}
}

func TestServiceCreate(t *testing.T) {
	store := newMemStore()
	seedClient(store)
	svc := newTestService(store)

	got, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != "res-1" {
		t.Fatalf("id = %q, want res-1", got.ID)
	}
	if got.Status != model.StatusPending {
		t.Fatalf("status = %q, want pending", got.Status)
	}
	if !got.CreatedAt.Equal(testNow) || !got.UpdatedAt.Equal(testNow) {
		t.Fatalf("timestamps = %v/%v, want %v", got.CreatedAt, got.UpdatedAt, testNow)
	}

	// Round-trip: reading it back returns the same record.
	stored, err := svc.Get(context.Background(), "res-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored != got {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", stored, got)
	}
}

func TestServiceCreateUnknownClient(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), validCreate())
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("got %v, want ErrClientNotFound", err)
	}
	if store.saves != 0 {
		t.Fatalf("save called %d times on failure", store.saves)
	}
}

func TestServiceCreateInvalidNoPersistence(t *testing.T) {
	store := newMemStore()
	seedClient(store)
	svc := newTestService(store)

	cases := []struct {
		name   string
		mutate func(*CreateRequest)
		want   error
	}{
		{"inverted range", func(r *CreateRequest) { r.EndDate = r.StartDate }, ErrInvalidRange},
		{"past start", func(r *CreateRequest) { r.StartDate = days(-1) }, ErrPastDate},
		{"bad guests", func(r *CreateRequest) { r.Guests = 0 }, ErrInvalidGuestCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)
			if _, err := svc.Create(context.Background(), req); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if store.saves != 0 {
				t.Fatalf("save called %d times after failed validation", store.saves)
			}
		})
	}
}

func TestServiceUpdateMergesPatch(t *testing.T) {
	store := newMemStore()
	seedClient(store)
	svc := newTestService(store)
	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	guests := 5
	notes := "crib needed"
	got, err := svc.Update(context.Background(), created.ID, Patch{Guests: &guests, Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Guests != 5 || got.Notes != "crib needed" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.StartDate != created.StartDate || got.EndDate != created.EndDate {
		t.Fatalf("unpatched fields changed: %+v", got)
	}
	// Same clock reading, yet UpdatedAt moved strictly forward.
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("UpdatedAt %v not after %v", got.UpdatedAt, created.UpdatedAt)
	}
}

func TestServiceUpdateInvalidPatchNoWrite(t *testing.T) {
	store := newMemStore()
	seedClient(store)
	svc := newTestService(store)
	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := created.StartDate
	if _, err := svc.Update(context.Background(), created.ID, Patch{EndDate: &bad}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("got %v, want ErrInvalidRange", err)
	}
	if store.updates != 0 {
		t.Fatalf("update persisted after failed validation")
	}
}

func TestServiceUpdateMissing(t *testing.T) {
	svc := newTestService(newMemStore())
	notes := "x"
	if _, err := svc.Update(context.Background(), "missing", Patch{Notes: &notes}); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("got %v, want ErrReservationNotFound", err)
	}
}

func TestServiceConfirmAndCancelLapsedDates(t *testing.T) {
	store := newMemStore()
	seedClient(store)
	svc := newTestService(store)
	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Backdate the stored reservation so its range is fully in the past.
	r := store.reservations[created.ID]
	r.StartDate = days(-20)
	r.EndDate = days(-18)
	store.reservations[created.ID] = r

	confirmed, err := svc.Confirm(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("confirm on lapsed dates: %v", err)
	}
	if confirmed.Status != model.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", confirmed.Status)
	}

	cancelled, err := svc.Cancel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("cancel on lapsed dates: %v", err)
	}
	if cancelled.Status != model.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", cancelled.Status)
	}
}

func TestServiceDelete(t *testing.T) {
	store := newMemStore()
	seedClient(store)
	svc := newTestService(store)
	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := svc.Delete(context.Background(), created.ID)
	if err != nil || !ok {
		t.Fatalf("delete = %v, %v", ok, err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("got %v after delete, want ErrReservationNotFound", err)
	}
	if ok, err := svc.Delete(context.Background(), created.ID); ok || !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("second delete = %v, %v", ok, err)
	}
}

func TestServiceListByClientAndProperty(t *testing.T) {
	store := newMemStore()
	seedClient(store)
	store.clients["client-2"] = model.Client{ID: "client-2", Name: "Ivo Marsh", Email: "ivo@example.com"}
	svc := newTestService(store)

	first, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other := validCreate()
	other.ClientID = "client-2"
	other.PropertyID = strptr("prop-2")
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("create: %v", err)
	}

	byClient, err := svc.ListByClient(context.Background(), "client-1")
	if err != nil || len(byClient) != 1 || byClient[0].ID != first.ID {
		t.Fatalf("by client = %+v, %v", byClient, err)
	}
	byProp, err := svc.ListByProperty(context.Background(), "prop-2")
	if err != nil || len(byProp) != 1 || byProp[0].ClientID != "client-2" {
		t.Fatalf("by property = %+v, %v", byProp, err)
	}
	all, err := svc.List(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("list = %d records, %v", len(all), err)
	}
}

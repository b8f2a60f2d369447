package split

import (
	"errors"
	"testing"
)

func TestStoreCreateAssignsID(t *testing.T) {
	st := NewStore()

	a := st.Create(makeSession(3, []int{0, 0}))
	b := st.Create(makeSession(3, []int{0, 0}))

	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("sessions must get distinct ids: %q %q", a.ID, b.ID)
	}
}

func TestStoreGetUnknown(t *testing.T) {
	st := NewStore()

	if _, err := st.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStoreFailedUpdateLeavesSnapshotUntouched(t *testing.T) {
	st := NewStore()
	s := st.Create(makeSession(3, []int{1, 1}))

	_, err := st.Update(s.ID, func(cur Session) (Session, error) {
		cur.Items[0].Assignments[0] = 99
		return cur, ErrIndexOutOfRange
	})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected the command error, got %v", err)
	}

	got, err := st.Get(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Items[0].Assignments[0] != 1 {
		t.Fatalf("failed update leaked into the store: %v", got.Items[0].Assignments)
	}
}

func TestStoreGetReturnsIndependentCopy(t *testing.T) {
	st := NewStore()
	s := st.Create(makeSession(3, []int{1, 1}))

	got, _ := st.Get(s.ID)
	got.Items[0].Assignments[0] = 99

	again, _ := st.Get(s.ID)
	if again.Items[0].Assignments[0] != 1 {
		t.Fatalf("mutating a snapshot must not affect the store")
	}
}

package doctor

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	doctors map[string]*Doctor
	err     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{doctors: make(map[string]*Doctor)}
}

func (f *fakeRepo) Create(ctx context.Context, d *Doctor) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.doctors[d.Email]; ok {
		return ErrDuplicate
	}
	d.ID = uuid.New()
	f.doctors[d.Email] = d
	return nil
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var all []*Doctor
	for _, d := range f.doctors {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeRepo) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.doctors[email]; !ok {
		return false, nil
	}
	delete(f.doctors, email)
	return true, nil
}

func strptr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	svc := NewService(newFakeRepo())

	d, err := svc.Create(context.Background(), &CreateInput{
		Email:     "dr.chen@example.com",
		Name:      "Dr. Chen",
		Specialty: strptr("Cardiology"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("doctor was not assigned an id")
	}
	if d.Specialty == nil || *d.Specialty != "Cardiology" {
		t.Errorf("specialty not kept: %v", d.Specialty)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	in := &CreateInput{Email: "dr.chen@example.com", Name: "Dr. Chen"}

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), &CreateInput{Email: "dr.chen@example.com", Name: "Other"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())

	cases := []*CreateInput{
		{Email: "dr.chen@example.com"},
		{Name: "Dr. Chen"},
		{Email: "not-an-email", Name: "Dr. Chen"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%+v): expected ErrValidation, got %v", in, err)
		}
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.Create(context.Background(), &CreateInput{Email: "dr.chen@example.com", Name: "Dr. Chen"}); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), "dr.chen@example.com")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("expected deleted=true")
	}

	deleted, err = svc.Delete(context.Background(), "dr.chen@example.com")
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if deleted {
		t.Error("deleting an absent doctor should report deleted=false")
	}
}

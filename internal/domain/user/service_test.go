package user

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeRepo struct {
	users map[string]*User
	err   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) Upsert(ctx context.Context, u *User) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.users[u.Email]; ok {
		existing.Name = u.Name
		existing.UpdatedAt = time.Now()
		return existing, nil
	}
	stored := &User{Email: u.Email, Name: u.Name, Role: RoleNone, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.users[u.Email] = stored
	return stored, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) SetRole(ctx context.Context, email, role string) error {
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[email]
	if !ok {
		return ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]*User, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var all []*User
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })
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

func (f *fakeRepo) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	u, ok := f.users[email]
	return ok && u.Role == RoleAdmin, nil
}

func TestUpsert_NewUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.Upsert(context.Background(), "jordan@example.com", "Jordan Lee")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if u.Role != RoleNone {
		t.Errorf("new user role = %q, want %q", u.Role, RoleNone)
	}
}

func TestUpsert_KeepsRole(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if _, err := svc.Upsert(context.Background(), "jordan@example.com", "Jordan Lee"); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := svc.MakeAdmin(context.Background(), "jordan@example.com"); err != nil {
		t.Fatalf("MakeAdmin: %v", err)
	}

	u, err := svc.Upsert(context.Background(), "jordan@example.com", "Jordan L.")
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if u.Role != RoleAdmin {
		t.Errorf("upsert must not reset role, got %q", u.Role)
	}
	if u.Name != "Jordan L." {
		t.Errorf("upsert should refresh the name, got %q", u.Name)
	}
}

func TestUpsert_InvalidEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	for _, email := range []string{"", "  ", "not-an-email"} {
		if _, err := svc.Upsert(context.Background(), email, "X"); !errors.Is(err, ErrValidation) {
			t.Errorf("Upsert(%q): expected ErrValidation, got %v", email, err)
		}
	}
}

func TestMakeAdmin_UnknownUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.MakeAdmin(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestIsAdmin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if _, err := svc.Upsert(context.Background(), "jordan@example.com", "Jordan Lee"); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := svc.IsAdmin(context.Background(), "jordan@example.com")
	if err != nil || got {
		t.Errorf("fresh user should not be admin, got (%v, %v)", got, err)
	}
	got, err = svc.IsAdmin(context.Background(), "ghost@example.com")
	if err != nil || got {
		t.Errorf("unknown user should not be admin, got (%v, %v)", got, err)
	}

	if err := svc.MakeAdmin(context.Background(), "jordan@example.com"); err != nil {
		t.Fatalf("MakeAdmin: %v", err)
	}
	got, err = svc.IsAdmin(context.Background(), "jordan@example.com")
	if err != nil || !got {
		t.Errorf("expected admin after grant, got (%v, %v)", got, err)
	}
}

func TestList_Paginates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := svc.Upsert(context.Background(), email, "User"); err != nil {
			t.Fatalf("Upsert(%s): %v", email, err)
		}
	}

	page, total, err := svc.List(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(page) != 2 || page[0].Email != "a@example.com" {
		t.Errorf("unexpected first page: %v", page)
	}

	page, _, err = svc.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if len(page) != 1 || page[0].Email != "c@example.com" {
		t.Errorf("unexpected second page: %v", page)
	}
}

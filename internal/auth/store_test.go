package auth

import (
	"sync"
	"testing"
)

func TestInsertAndLookup(t *testing.T) {
	store := NewStore()

	if err := store.Insert(User{Email: "a@x.com", Name: "A", PasswordHash: "h"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	user, ok := store.Lookup("a@x.com")
	if !ok {
		t.Fatal("expected user to be found")
	}
	if user.Name != "A" {
		t.Fatalf("unexpected name: %s", user.Name)
	}

	if _, ok := store.Lookup("missing@x.com"); ok {
		t.Fatal("expected lookup miss for unknown email")
	}
}

func TestInsertDuplicateKeepsOriginal(t *testing.T) {
	store := NewStore()

	if err := store.Insert(User{Email: "a@x.com", Name: "first", PasswordHash: "h1"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := store.Insert(User{Email: "a@x.com", Name: "second", PasswordHash: "h2"}); err != ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	user, _ := store.Lookup("a@x.com")
	if user.Name != "first" || user.PasswordHash != "h1" {
		t.Fatalf("duplicate insert overwrote original: %+v", user)
	}
}

func TestConcurrentInsertSingleWinner(t *testing.T) {
	store := NewStore()

	const attempts = 64
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Insert(User{Email: "race@x.com", Name: "R", PasswordHash: "h"})
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		if err == nil {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one stored user, got %d", store.Len())
	}
}

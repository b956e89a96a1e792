package services

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCodeStoreValidateIsSingleUse(t *testing.T) {
	store := NewCodeStore()

	code := store.Generate("user@example.com")
	if len(code) != 6 {
		t.Fatalf("expected a 6-digit code, got %q", code)
	}

	if !store.Validate("user@example.com", code) {
		t.Fatal("expected first validation to succeed")
	}
	if store.Validate("user@example.com", code) {
		t.Fatal("expected second validation of the same code to fail")
	}
}

func TestCodeStoreRejectsWrongCode(t *testing.T) {
	store := NewCodeStore()

	code := store.Generate("user@example.com")
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	if store.Validate("user@example.com", wrong) {
		t.Fatal("expected wrong code to be rejected")
	}
	// A failed attempt does not burn the entry.
	if !store.Validate("user@example.com", code) {
		t.Fatal("expected the real code to still work")
	}
}

func TestCodeStoreCaseInsensitiveEmail(t *testing.T) {
	store := NewCodeStore()

	code := store.Generate("User@Example.COM")
	if !store.Validate("user@example.com", code) {
		t.Fatal("expected email lookup to ignore case")
	}
}

func TestCodeStoreRegenerateReplacesCode(t *testing.T) {
	store := NewCodeStore()

	old := store.Generate("user@example.com")
	fresh := store.Generate("user@example.com")
	if old != fresh && store.Validate("user@example.com", old) {
		t.Fatal("expected a regenerated code to invalidate the old one")
	}
	if !store.Validate("user@example.com", fresh) {
		t.Fatal("expected the latest code to validate")
	}
}

func TestCodeStoreExpiry(t *testing.T) {
	store := NewCodeStore()

	current := time.Now()
	store.now = func() time.Time { return current }

	code := store.Generate("user@example.com")

	current = current.Add(codeTTL + time.Second)
	if store.Validate("user@example.com", code) {
		t.Fatal("expected an expired code to be rejected")
	}

	// Expiry evicts the entry, so a later attempt inside a fresh window
	// still fails.
	current = current.Add(-2 * time.Second)
	if store.Validate("user@example.com", code) {
		t.Fatal("expected the evicted entry to stay gone")
	}
}

func TestCodeStoreEmptyInputs(t *testing.T) {
	store := NewCodeStore()
	code := store.Generate("user@example.com")

	if store.Validate("", code) {
		t.Fatal("expected empty email to be rejected")
	}
	if store.Validate("user@example.com", "") {
		t.Fatal("expected empty code to be rejected")
	}
}

func TestCodeStoreConcurrentAccess(t *testing.T) {
	store := NewCodeStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@example.com", i)
			code := store.Generate(email)
			if !store.Validate(email, code) {
				t.Errorf("expected validation to succeed for %s", email)
			}
		}(i)
	}
	wg.Wait()
}

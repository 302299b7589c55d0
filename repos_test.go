/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import (
	"testing"

	"github.com/suparena/itemstore/dataclient/mock"
)

type TestUser struct {
	ID    string
	Name  string
	Email string
}

type TestProduct struct {
	ID    string
	Name  string
	Price float64
}

func newUserRepo() *Repository[TestUser] {
	return New[TestUser](mock.New[TestUser]())
}

func newProductRepo() *Repository[TestProduct] {
	return New[TestProduct](mock.New[TestProduct]())
}

func TestTypedRepos(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		repos := NewTypedRepos[TestUser]()

		userRepo := newUserRepo()
		defer userRepo.Close()
		if err := repos.Register("users", userRepo); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		retrieved, err := repos.Get("users")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved != userRepo {
			t.Fatal("Retrieved repository is not the registered one")
		}

		keys := repos.List()
		if len(keys) != 1 || keys[0] != "users" {
			t.Fatalf("Expected [users], got %v", keys)
		}

		if err := repos.Remove("users"); err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}
		if _, err := repos.Get("users"); err == nil {
			t.Fatal("Expected error after removal")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		repos := NewTypedRepos[TestUser]()

		first := newUserRepo()
		defer first.Close()
		if err := repos.Register("users", first); err != nil {
			t.Fatalf("First registration failed: %v", err)
		}

		second := newUserRepo()
		defer second.Close()
		if err := repos.Register("users", second); err == nil {
			t.Fatal("Expected duplicate registration error")
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		repos := NewTypedRepos[TestUser]()
		if err := repos.Remove("ghost"); err == nil {
			t.Fatal("Expected error removing unknown key")
		}
	})
}

func TestMultiTypeRepos(t *testing.T) {
	mtr := NewMultiTypeRepos()

	t.Run("DifferentTypes", func(t *testing.T) {
		userRepo := newUserRepo()
		defer userRepo.Close()
		if err := RegisterRepo(mtr, "users", userRepo); err != nil {
			t.Fatalf("Failed to register user repo: %v", err)
		}

		productRepo := newProductRepo()
		defer productRepo.Close()
		if err := RegisterRepo(mtr, "products", productRepo); err != nil {
			t.Fatalf("Failed to register product repo: %v", err)
		}

		gotUsers, err := GetRepo[TestUser](mtr, "users")
		if err != nil {
			t.Fatalf("Failed to get user repo: %v", err)
		}
		if gotUsers != userRepo {
			t.Fatal("User repo mismatch")
		}

		gotProducts, err := GetRepo[TestProduct](mtr, "products")
		if err != nil {
			t.Fatalf("Failed to get product repo: %v", err)
		}
		if gotProducts != productRepo {
			t.Fatal("Product repo mismatch")
		}
	})

	t.Run("SameKeyDifferentTypes", func(t *testing.T) {
		userRepo := newUserRepo()
		defer userRepo.Close()
		if err := RegisterRepo(mtr, "items", userRepo); err != nil {
			t.Fatalf("Failed to register user repo under shared key: %v", err)
		}

		productRepo := newProductRepo()
		defer productRepo.Close()
		if err := RegisterRepo(mtr, "items", productRepo); err != nil {
			t.Fatalf("Same key must be free per type: %v", err)
		}

		if _, err := GetRepo[TestUser](mtr, "items"); err != nil {
			t.Fatalf("Failed to get user repo: %v", err)
		}
		if _, err := GetRepo[TestProduct](mtr, "items"); err != nil {
			t.Fatalf("Failed to get product repo: %v", err)
		}
	})

	t.Run("RemoveAndList", func(t *testing.T) {
		keys := ListRepos[TestUser](mtr)
		if len(keys) == 0 {
			t.Fatal("Expected registered user repos")
		}

		if err := RemoveRepo[TestUser](mtr, "users"); err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}
		if _, err := GetRepo[TestUser](mtr, "users"); err == nil {
			t.Fatal("Expected error after removal")
		}
	})
}

package domain

import (
	"testing"
	"time"
)

func TestRecommendation_Touch(t *testing.T) {
	r := &Recommendation{Published: time.Now()}

	if r.Updated != nil {
		t.Fatal("Updated should be nil before Touch")
	}

	r.Touch()

	if r.Updated == nil {
		t.Fatal("Updated should be set after Touch")
	}
	if time.Since(*r.Updated) > time.Second {
		t.Errorf("Updated should be recent, got %v", *r.Updated)
	}
}

func TestRecommendation_IsOwnedBy(t *testing.T) {
	r := &Recommendation{UserID: "user-abc"}

	if !r.IsOwnedBy("user-abc") {
		t.Error("owner should match")
	}
	if r.IsOwnedBy("user-xyz") {
		t.Error("non-owner should not match")
	}
	if r.IsOwnedBy("") {
		t.Error("empty requester should not match")
	}
}

func TestUser_Timestamps(t *testing.T) {
	u := &User{}
	u.InitTimestamps()

	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Fatal("InitTimestamps should set both timestamps")
	}
	if !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Error("CreatedAt and UpdatedAt should match after init")
	}

	created := u.CreatedAt
	time.Sleep(time.Millisecond)
	u.Touch()

	if !u.CreatedAt.Equal(created) {
		t.Error("Touch must not modify CreatedAt")
	}
	if !u.UpdatedAt.After(created) {
		t.Error("Touch should advance UpdatedAt")
	}
}

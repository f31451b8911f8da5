package utils

import (
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/CPU-commits/Academy_BBackoffice/res"
)

func TestConcurrencyRunsEveryTask(t *testing.T) {
	var ran int64
	errRes := Concurrency(3, 20, func(index int, setError func(errRes *res.ErrorRes)) {
		atomic.AddInt64(&ran, 1)
	})
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if ran != 20 {
		t.Fatalf("ran %d tasks, want 20", ran)
	}
}

func TestConcurrencyPropagatesError(t *testing.T) {
	errRes := Concurrency(2, 10, func(index int, setError func(errRes *res.ErrorRes)) {
		if index == 4 {
			setError(&res.ErrorRes{
				Err:        http.ErrBodyNotAllowed,
				StatusCode: http.StatusServiceUnavailable,
			})
		}
	})
	if errRes == nil {
		t.Fatal("expected the task error to propagate")
	}
	if errRes.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", errRes.StatusCode)
	}
}

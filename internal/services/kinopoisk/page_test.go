package kinopoisk

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFetchAllPagesFirstPageError(t *testing.T) {
	calls := 0
	items := FetchAllPages(context.Background(), testLogger(), "top250", func(ctx context.Context, page int) Page[string] {
		calls++
		return ErrorPage[string]()
	})

	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if calls != 1 {
		t.Errorf("expected no requests after a failed first page, got %d calls", calls)
	}
}

func TestFetchAllPagesEmptyFirstPage(t *testing.T) {
	calls := 0
	items := FetchAllPages(context.Background(), testLogger(), "top250", func(ctx context.Context, page int) Page[string] {
		calls++
		return Page[string]{Total: 0, TotalPages: 0}
	})

	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if calls != 1 {
		t.Errorf("expected a single request for an empty collection, got %d calls", calls)
	}
}

func TestFetchAllPagesSkipsFailedPage(t *testing.T) {
	pages := map[int]Page[string]{
		1: {Items: []string{"a", "b"}, Total: 6, TotalPages: 3},
		2: ErrorPage[string](),
		3: {Items: []string{"e", "f"}, Total: 6, TotalPages: 3},
	}

	items := FetchAllPages(context.Background(), testLogger(), "top250", func(ctx context.Context, page int) Page[string] {
		return pages[page]
	})

	want := []string{"a", "b", "e", "f"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, item := range want {
		if items[i] != item {
			t.Errorf("item %d: expected %q, got %q", i, item, items[i])
		}
	}
}

func TestFetchAllPagesAllPages(t *testing.T) {
	var requested []int
	items := FetchAllPages(context.Background(), testLogger(), "top250", func(ctx context.Context, page int) Page[string] {
		requested = append(requested, page)
		return Page[string]{Items: []string{"x"}, Total: 3, TotalPages: 3}
	})

	if len(items) != 3 {
		t.Errorf("expected 3 items, got %d", len(items))
	}
	if len(requested) != 3 || requested[0] != 1 || requested[1] != 2 || requested[2] != 3 {
		t.Errorf("expected pages 1..3 in order, got %v", requested)
	}
}

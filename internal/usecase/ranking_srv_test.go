package usecase

import (
	"context"
	"reflect"
	"testing"

	"movies-db/internal/dto/request"
	"movies-db/pkg/utils"
)

func TestDenseRank(t *testing.T) {
	tests := []struct {
		name   string
		totals []int64
		want   []int
	}{
		{"empty", []int64{}, []int{}},
		{"single", []int64{7}, []int{1}},
		{"all tied", []int64{2, 2, 2}, []int{1, 1, 1}},
		{"no gaps after ties", []int64{4, 3, 3, 3, 2, 0}, []int{1, 2, 2, 2, 3, 4}},
		{"all zero", []int64{0, 0}, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DenseRank(tt.totals)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DenseRank(%v) = %v, want %v", tt.totals, got, tt.want)
			}
		})
	}
}

func TestGetRanking_MissingBounds(t *testing.T) {
	repo, _ := newMemRepository()
	svc := NewRankingService(repo, testLogger)

	tests := []struct {
		name string
		req  request.RankingRequest
		want []string
	}{
		{
			name: "date_from",
			req:  request.RankingRequest{DateUntil: "2030-01-01"},
			want: []string{"date_from not provided"},
		},
		{
			name: "date_until",
			req:  request.RankingRequest{DateFrom: "2030-01-01"},
			want: []string{"date_until not provided"},
		},
		{
			name: "both",
			req:  request.RankingRequest{},
			want: []string{"date_from not provided", "date_until not provided"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetRanking(context.Background(), &tt.req)
			appErr, ok := utils.AsAppError(err)
			if !ok || appErr.Kind != utils.KindInvalidInput {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if !reflect.DeepEqual(appErr.Errors, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, appErr.Errors)
			}
		})
	}
}

func TestGetRanking_MalformedDates(t *testing.T) {
	repo, _ := newMemRepository()
	svc := NewRankingService(repo, testLogger)

	_, err := svc.GetRanking(context.Background(), &request.RankingRequest{
		DateFrom:  "2030-13-01",
		DateUntil: "tomorrow",
	})
	appErr, ok := utils.AsAppError(err)
	if !ok || appErr.Kind != utils.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if len(appErr.Errors) != 2 {
		t.Fatalf("expected both bounds reported, got %v", appErr.Errors)
	}
}

func TestGetRanking_BoundsAreInclusive(t *testing.T) {
	repo, store := newMemRepository()
	movie := store.addMovie("Alien")
	store.addComment(movie.ID, date(2029, 12, 31))
	store.addComment(movie.ID, date(2030, 1, 1))
	store.addComment(movie.ID, date(2030, 1, 2))
	store.addComment(movie.ID, date(2030, 12, 31))
	store.addComment(movie.ID, date(2031, 1, 1))
	store.addComment(movie.ID, date(2031, 1, 2))
	svc := NewRankingService(repo, testLogger)

	entries, err := svc.GetRanking(context.Background(), &request.RankingRequest{
		DateFrom:  "2030-01-01",
		DateUntil: "2031-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].TotalComments != 4 || entries[0].Rank != 1 {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestGetRanking_DenseRanksEveryMovie(t *testing.T) {
	repo, store := newMemRepository()
	counts := map[string]int{"A": 4, "B": 3, "C": 3, "D": 3, "E": 2, "F": 0}
	for title, n := range counts {
		movie := store.addMovie(title)
		for i := 0; i < n; i++ {
			store.addComment(movie.ID, date(2024, 5, 1))
		}
	}
	svc := NewRankingService(repo, testLogger)

	entries, err := svc.GetRanking(context.Background(), &request.RankingRequest{
		DateFrom:  "2024-01-01",
		DateUntil: "2024-12-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantRank := map[string]int{"A": 1, "B": 2, "C": 2, "D": 2, "E": 3, "F": 4}
	if len(entries) != len(wantRank) {
		t.Fatalf("expected %d entries, got %d", len(wantRank), len(entries))
	}
	for i, e := range entries {
		if e.Rank != wantRank[e.Title] {
			t.Fatalf("movie %s: expected rank %d, got %d", e.Title, wantRank[e.Title], e.Rank)
		}
		if e.TotalComments != int64(counts[e.Title]) {
			t.Fatalf("movie %s: expected %d comments, got %d", e.Title, counts[e.Title], e.TotalComments)
		}
		if i > 0 && entries[i-1].TotalComments < e.TotalComments {
			t.Fatalf("entries not ordered by count: %+v", entries)
		}
	}
}

func TestGetRanking_InvertedRangeCountsNothing(t *testing.T) {
	repo, store := newMemRepository()
	movie := store.addMovie("Alien")
	store.addComment(movie.ID, date(2030, 6, 1))
	svc := NewRankingService(repo, testLogger)

	entries, err := svc.GetRanking(context.Background(), &request.RankingRequest{
		DateFrom:  "2031-01-01",
		DateUntil: "2030-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].TotalComments != 0 || entries[0].Rank != 1 {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

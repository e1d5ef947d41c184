package service

import (
	"testing"

	"healthtrack/internal/repository"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{7, 7},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.in); got != tt.want {
			t.Errorf("ClampPage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-1, defaultLimit},
		{0, defaultLimit},
		{1, 1},
		{100, 100},
		{101, 100},
		{10_000, 100},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		page, limit int
		want        repository.Page
	}{
		{0, 0, repository.Page{Skip: 0, Limit: defaultLimit}},
		{1, 10, repository.Page{Skip: 0, Limit: 10}},
		{3, 20, repository.Page{Skip: 40, Limit: 20}},
		{2, 500, repository.Page{Skip: 100, Limit: 100}},
	}
	for _, tt := range tests {
		if got := pageWindow(tt.page, tt.limit); got != tt.want {
			t.Errorf("pageWindow(%d, %d) = %+v, want %+v", tt.page, tt.limit, got, tt.want)
		}
	}
}

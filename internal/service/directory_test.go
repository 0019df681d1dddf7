package service

import (
	"context"
	"errors"
	"testing"

	"student_manager/internal/models"
	"student_manager/internal/repository"
)

func TestDirectoryService_Get(t *testing.T) {
	repo := &mockStudentRepo{byID: map[int]models.Student{
		7: {ID: 7, Name: "Anna", Email: "a@x.com"},
	}}
	svc := NewDirectoryService(repo)

	got, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Anna" {
		t.Fatalf("unexpected student: %+v", got)
	}

	_, err = svc.Get(context.Background(), 99)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDirectoryService_CreateAndUpdate(t *testing.T) {
	repo := &mockStudentRepo{insertID: 3}
	svc := NewDirectoryService(repo)

	id, err := svc.Create(context.Background(), "Anna", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected assigned id 3, got %d", id)
	}
	if repo.lastInsertName != "Anna" || repo.lastInsertEmail != "a@x.com" {
		t.Fatalf("unexpected insert args: %q %q", repo.lastInsertName, repo.lastInsertEmail)
	}

	// An update carries the id through untouched.
	if err := svc.Update(context.Background(), 3, "Anna B", "b@x.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpdate.ID != 3 || repo.lastUpdate.Name != "Anna B" {
		t.Fatalf("unexpected update: %+v", repo.lastUpdate)
	}
}

func TestDirectoryService_DeleteMissing(t *testing.T) {
	repo := &mockStudentRepo{deleteErr: repository.ErrNotFound}
	svc := NewDirectoryService(repo)

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if repo.lastDeleteID != 42 {
		t.Fatalf("expected delete id 42, got %d", repo.lastDeleteID)
	}
}

func TestDirectoryService_Search(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{
		{ID: 1, Name: "Anna", Email: "a@x.com"},
		{ID: 2, Name: "Bob", Email: "b@x.com"},
		{ID: 3, Name: "Juan", Email: "j@x.com"},
	}}
	svc := NewDirectoryService(repo)

	got, err := svc.Search(context.Background(), "an")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Anna" || got[1].Name != "Juan" {
		t.Fatalf("unexpected results: %+v", got)
	}

	// Empty query behaves like the list view.
	got, err = svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected everyone for an empty query, got %+v", got)
	}
	if repo.listCalls != 1 || repo.searchCalls != 1 {
		t.Fatalf("expected one list and one search call, got %d/%d", repo.listCalls, repo.searchCalls)
	}
}

func TestDirectoryService_ExportCSV(t *testing.T) {
	tests := []struct {
		name     string
		students []models.Student
		want     string
	}{
		{
			name: "plain values",
			students: []models.Student{
				{ID: 1, Name: "Anna", Email: "a@x.com"},
				{ID: 2, Name: "Bob", Email: "b@x.com"},
			},
			want: "Nom,Email\nAnna,a@x.com\nBob,b@x.com\n",
		},
		{
			name:     "empty directory is just the header",
			students: nil,
			want:     "Nom,Email\n",
		},
		{
			name: "commas and quotes are escaped",
			students: []models.Student{
				{ID: 1, Name: `Anna "Ann" Smith`, Email: "a,b@x.com"},
			},
			want: "Nom,Email\n\"Anna \"\"Ann\"\" Smith\",\"a,b@x.com\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDirectoryService(&mockStudentRepo{students: tt.students})

			got, err := svc.ExportCSV(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("unexpected csv:\nwant %q\ngot  %q", tt.want, string(got))
			}
		})
	}
}

package forms

import (
	"net/url"
	"testing"
)

func TestBindStudent(t *testing.T) {
	tests := []struct {
		name       string
		values     url.Values
		wantData   StudentData
		wantFields []string
	}{
		{
			name:     "valid",
			values:   url.Values{"name": {"Anna"}, "email": {"a@x.com"}},
			wantData: StudentData{Name: "Anna", Email: "a@x.com"},
		},
		{
			name:     "surrounding whitespace is trimmed",
			values:   url.Values{"name": {"  Anna "}, "email": {" a@x.com "}},
			wantData: StudentData{Name: "Anna", Email: "a@x.com"},
		},
		{
			name:       "missing name",
			values:     url.Values{"email": {"a@x.com"}},
			wantFields: []string{"name"},
		},
		{
			name:       "bad email shape",
			values:     url.Values{"name": {"Anna"}, "email": {"nope"}},
			wantFields: []string{"email"},
		},
		{
			name:       "everything missing",
			values:     url.Values{},
			wantFields: []string{"name", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, errs := BindStudent(tt.values)

			if len(tt.wantFields) == 0 {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %+v", errs)
				}
				if data != tt.wantData {
					t.Fatalf("unexpected data: %+v", data)
				}
				return
			}

			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %+v", len(tt.wantFields), errs)
			}
			for _, f := range tt.wantFields {
				if !errs.Has(f) {
					t.Fatalf("expected an error on %q, got %+v", f, errs)
				}
				if errs.Get(f) == "" {
					t.Fatalf("expected a message on %q", f)
				}
			}
		})
	}
}

func TestBindRegister(t *testing.T) {
	tests := []struct {
		name       string
		values     url.Values
		wantFields []string
	}{
		{
			name:   "valid",
			values: url.Values{"username": {"anna"}, "email": {"a@x.com"}, "password": {"secret1"}},
		},
		{
			name:       "password too short",
			values:     url.Values{"username": {"anna"}, "email": {"a@x.com"}, "password": {"abc"}},
			wantFields: []string{"password"},
		},
		{
			name:       "password missing",
			values:     url.Values{"username": {"anna"}, "email": {"a@x.com"}},
			wantFields: []string{"password"},
		},
		{
			name:       "username and email missing",
			values:     url.Values{"password": {"secret1"}},
			wantFields: []string{"username", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := BindRegister(tt.values)

			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %+v", len(tt.wantFields), errs)
			}
			for _, f := range tt.wantFields {
				if !errs.Has(f) {
					t.Fatalf("expected an error on %q, got %+v", f, errs)
				}
			}
		})
	}
}

func TestBindLogin(t *testing.T) {
	_, errs := BindLogin(url.Values{"username": {"anna"}, "password": {"x"}})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}

	// Login never checks password length, only presence.
	_, errs = BindLogin(url.Values{"username": {"anna"}, "password": {"a"}})
	if len(errs) != 0 {
		t.Fatalf("short passwords are allowed at login, got %+v", errs)
	}

	_, errs = BindLogin(url.Values{})
	if len(errs) != 2 || !errs.Has("username") || !errs.Has("password") {
		t.Fatalf("expected username and password errors, got %+v", errs)
	}
}

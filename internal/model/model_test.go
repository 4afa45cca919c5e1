package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"patient", RolePatient, false},
		{"doctor", RoleDoctor, false},
		{"pharmacist", RolePharmacist, false},
		{"admin", "", true},
		{"", "", true},
		{"Patient", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRole) {
					t.Fatalf("expected ErrInvalidRole, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProfileRoles(t *testing.T) {
	var profiles = []Profile{&Patient{ID: 1}, &Doctor{ID: 2}, &Pharmacist{ID: 3}}
	want := []Role{RolePatient, RoleDoctor, RolePharmacist}
	for i, p := range profiles {
		if p.Role() != want[i] {
			t.Errorf("profile %d: role %s, want %s", i, p.Role(), want[i])
		}
		if p.RecordID() != int64(i+1) {
			t.Errorf("profile %d: id %d", i, p.RecordID())
		}
	}
}

func TestStatusLine(t *testing.T) {
	a := &Appointment{DoctorName: "House", StartTime: time.Now()}
	if got := a.StatusLine(); got != "Your appointment with Dr. House is not yet accepted." {
		t.Errorf("pending: %q", got)
	}
	a.Confirm = true
	if got := a.StatusLine(); got != "Your appointment with Dr. House is accepted." {
		t.Errorf("accepted: %q", got)
	}
}

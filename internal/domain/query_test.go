package domain

import (
	"errors"
	"testing"
)

func TestNewQuery_Validation(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		abstract string
		wantErr  bool
	}{
		{"valid", "Smart Irrigation", "An IoT system for watering crops.", false},
		{"empty title", "", "abstract", true},
		{"blank title", "   ", "abstract", true},
		{"empty abstract", "title", "", true},
		{"blank abstract", "title", "\t\n", true},
		{"both empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuery(tt.title, tt.abstract)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestQuery_CombinedText_NotNormalized(t *testing.T) {
	q := Query{Title: "A Title!", Abstract: "An Abstract?"}
	if got := q.CombinedText(); got != "A Title! An Abstract?" {
		t.Errorf("combined text altered the input: %q", got)
	}
}

func TestQuery_IsIdenticalTo(t *testing.T) {
	p := Project{ID: 7, Title: "Deep Sea Mapper", Abstract: "Sonar-based seabed mapping."}

	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"exact", Query{"Deep Sea Mapper", "Sonar-based seabed mapping."}, true},
		{"case differs", Query{"deep sea mapper", "SONAR-BASED SEABED MAPPING."}, true},
		{"surrounding whitespace", Query{"  Deep Sea Mapper ", "\tSonar-based seabed mapping.\n"}, true},
		{"title differs", Query{"Deep Sea Mapper v2", "Sonar-based seabed mapping."}, false},
		{"abstract differs", Query{"Deep Sea Mapper", "Lidar-based seabed mapping."}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.IsIdenticalTo(p); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"  multiple   spaces\t\nhere ", "multiple spaces here"},
		{"C++ & Go (fast)", "c go fast"},
		{"", ""},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestProject_EmbeddingText(t *testing.T) {
	p := Project{Title: "Smart Grid!", Abstract: "Power,  managed."}
	if got := p.EmbeddingText(); got != "smart grid power managed" {
		t.Errorf("unexpected embedding text: %q", got)
	}
}

package layout

import (
	"errors"
	"testing"

	"github.com/vvka-141/depmap/pkg/depmap"
)

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		name    string
		rel     string
		want    depmap.Coordinate
		wantErr error
	}{
		{
			name: "version directory",
			rel:  "com.google.guava/guava/32.1.2-jre",
			want: depmap.Coordinate{GroupID: "com.google.guava", ArtifactID: "guava", Version: "32.1.2-jre"},
		},
		{
			name: "hash directory below version",
			rel:  "org.slf4j/slf4j-api/2.0.9/7cf2726fdcfbc8610f9a71fb3ed639871f315340",
			want: depmap.Coordinate{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Version: "2.0.9"},
		},
		{
			name: "windows separators",
			rel:  `junit\junit\4.13.2`,
			want: depmap.Coordinate{GroupID: "junit", ArtifactID: "junit", Version: "4.13.2"},
		},
		{name: "root", rel: ".", wantErr: depmap.ErrPathTooShallow},
		{name: "group only", rel: "com.example", wantErr: depmap.ErrPathTooShallow},
		{name: "group and artifact", rel: "com.example/lib", wantErr: depmap.ErrPathTooShallow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSourcePath(tt.rel)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSourcePath(%q) error = %v, want %v", tt.rel, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSourcePath(%q) unexpected error: %v", tt.rel, err)
			}
			if got != tt.want {
				t.Errorf("ParseSourcePath(%q) = %+v, want %+v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestIsPayloadAndIsSidecar(t *testing.T) {
	tests := []struct {
		name    string
		payload bool
		sidecar bool
	}{
		{"lib-1.0.jar", true, false},
		{"lib-1.0.pom", true, false},
		{"lib-1.0.jar.sha1", false, true},
		{"lib-1.0.pom.md5", false, true},
		{"lib-1.0.jar.asc", false, true},
		{"lib-1.0.module", false, false},
		{"jar", false, false},
	}

	for _, tt := range tests {
		if got := IsPayload(tt.name); got != tt.payload {
			t.Errorf("IsPayload(%q) = %v, want %v", tt.name, got, tt.payload)
		}
		if got := IsSidecar(tt.name); got != tt.sidecar {
			t.Errorf("IsSidecar(%q) = %v, want %v", tt.name, got, tt.sidecar)
		}
	}
}

package simm

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestParseVertex(t *testing.T) {
	tests := []struct {
		in      string
		want    Vertex
		wantErr bool
	}{
		{in: "2W", want: V2W},
		{in: "2w", want: V2W},
		{in: " 10y ", want: V10Y},
		{in: "30Y", want: V30Y},
		{in: "", want: NoVertex},
		{in: "4Y", wantErr: true},
		{in: "1D", wantErr: true},
		{in: "Y", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVertex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("ParseVertex(%q) error = %v, want a configuration error", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVertex(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVertex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVertex_ErrorNamesInput(t *testing.T) {
	for _, in := range []string{"7y", " 4Y", "1d"} {
		_, err := ParseVertex(in)
		if err == nil || !strings.Contains(err.Error(), fmt.Sprintf("unknown tenor %q", in)) {
			t.Errorf("ParseVertex(%q) error = %v, want it to name %q", in, err, in)
		}
	}
}

func TestVertex_Order(t *testing.T) {
	ladder := Vertices()
	if !slices.IsSortedFunc(ladder, Vertex.Compare) {
		t.Errorf("Vertices() is not sorted: %v", ladder)
	}
	for i := 1; i < len(ladder); i++ {
		if ladder[i-1].YearFraction() >= ladder[i].YearFraction() {
			t.Errorf("%v is not shorter than %v", ladder[i-1], ladder[i])
		}
		if !ladder[i-1].Before(ladder[i]) {
			t.Errorf("%v should be before %v", ladder[i-1], ladder[i])
		}
	}
	if V6M.YearFraction() != 0.5 || V15Y.YearFraction() != 15 {
		t.Errorf("unexpected year fractions: 6M=%v 15Y=%v", V6M.YearFraction(), V15Y.YearFraction())
	}
	if NoVertex.Compare(V2W) != -1 || V1Y.Compare(V1Y) != 0 {
		t.Error("NoVertex must sort first")
	}
}

func TestVertex_RoundTrip(t *testing.T) {
	for _, v := range Vertices() {
		got, err := ParseVertex(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVertex(%q) = %v, %v", v, got, err)
		}
	}
}

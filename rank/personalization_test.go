package rank

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestUniform(t *testing.T) {
	t.Parallel()

	model := buildTransition(t, []edge{{"a", "b", 1}, {"b", "c", 1}})

	want := Personalization{"a": 1.0 / 3, "b": 1.0 / 3, "c": 1.0 / 3}
	if diff := cmp.Diff(want, Uniform(model), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Uniform mismatch (-want +got):\n%s", diff)
	}
}

func TestFromWeights(t *testing.T) {
	t.Parallel()

	model := buildTransition(t, []edge{{"a", "b", 1}, {"b", "c", 1}})

	tests := []struct {
		name    string
		raw     map[string]float64
		want    Personalization
		wantErr error
	}{
		{
			name: "renormalized",
			raw:  map[string]float64{"a": 2, "b": 1, "c": 1},
			want: Personalization{"a": 0.5, "b": 0.25, "c": 0.25},
		},
		{
			name: "extra entries ignored",
			raw:  map[string]float64{"a": 1, "b": 1, "c": 0, "zz": 100},
			want: Personalization{"a": 0.5, "b": 0.5, "c": 0},
		},
		{
			name:    "missing node rejected",
			raw:     map[string]float64{"a": 1, "b": 1},
			wantErr: ErrIncompletePersonalization,
		},
		{
			name:    "zero sum rejected",
			raw:     map[string]float64{"a": 0, "b": 0, "c": 0},
			wantErr: ErrDegeneratePersonalization,
		},
		{
			name:    "negative weight rejected",
			raw:     map[string]float64{"a": 2, "b": -1, "c": 1},
			wantErr: ErrDegeneratePersonalization,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromWeights(model, tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromWeights err = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("failed construction returned a vector: %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromWeights: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("FromWeights mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromWeightsNamesMissingNode(t *testing.T) {
	t.Parallel()

	model := buildTransition(t, []edge{{"a", "b", 1}})

	_, err := FromWeights(model, map[string]float64{"a": 1})
	if err == nil || !strings.Contains(err.Error(), "b") {
		t.Fatalf("error should name the missing node, got %v", err)
	}
}

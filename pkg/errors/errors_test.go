package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with sentinel",
			op:       "Network.AddFactor",
			kind:     "cannot add support",
			err:      ErrNoCandidates,
			wantMsg:  "rbfols: Network.AddFactor: cannot add support: no candidate supports left",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Network.Fit",
			kind:     "solver failed",
			err:      nil,
			wantMsg:  "rbfols: Network.Fit: solver failed",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
			if tt.err != nil && !Is(err, tt.err) {
				t.Errorf("Expected Is(err, %v) to be true", tt.err)
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want string
	}{
		{
			name: "rows",
			axis: 0,
			want: "rbfols: New: dimension mismatch on axis 0 (rows). Expected 5, got 4",
		},
		{
			name: "features",
			axis: 1,
			want: "rbfols: New: dimension mismatch on axis 1 (features). Expected 5, got 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("New", 5, 4, tt.axis)
			if err.Error() != tt.want {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.want)
			}

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Fatal("Error should be castable to *DimensionError")
			}
			if dimErr.Axis != tt.axis {
				t.Errorf("Axis = %d, want %d", dimErr.Axis, tt.axis)
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("New", "X contains NaN or Inf")

	want := "rbfols: New: X contains NaN or Inf"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("rcond", "must be non-negative", -1.0)

	want := "rbfols: validation failed for parameter 'rcond': must be non-negative (got: -1)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestRankDeficiencyWarning(t *testing.T) {
	warn := NewRankDeficiencyWarning("Network.Fit", 2, 3)

	want := "Network.Fit: design matrix is rank deficient (rank 2 < 3 supports); using the minimum-norm solution"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestWarnRouting(t *testing.T) {
	prev := warningHandler
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(prev)

	Warn(NewRankDeficiencyWarning("Network.Fit", 1, 2))
	if len(got) != 1 {
		t.Fatalf("handler called %d times, want 1", len(got))
	}

	var zl []error
	SetZerologWarnFunc(func(w error) { zl = append(zl, w) })
	defer SetZerologWarnFunc(nil)

	Warn(NewUndefinedMetricWarning("r2", "constant target", 0))
	if len(zl) != 1 {
		t.Errorf("zerolog func called %d times, want 1", len(zl))
	}
	if len(got) != 1 {
		t.Errorf("fallback handler should not run when zerolog func is set")
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrDegenerateScale, "in Network.Kernel")

	if !Is(wrapped, ErrDegenerateScale) {
		t.Error("Expected Is(wrapped, ErrDegenerateScale) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in Network.Kernel") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d rows, got %d", "New", 10, 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in New: expected 10 rows, got 0"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestNewfInModelError(t *testing.T) {
	err := NewModelError("Network.Fit", "lstsq", Newf("SVD factorization of %d×%d design failed", 5, 3))

	want := "rbfols: Network.Fit: lstsq: SVD factorization of 5×3 design failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !strings.Contains(fmt.Sprintf("%+v", err), "errors_test.go") {
		t.Error("Expected Newf error to carry a stack trace")
	}
}

func TestErrorChaining(t *testing.T) {
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}

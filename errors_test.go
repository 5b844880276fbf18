package dft

import (
	"errors"
	"testing"
)

func TestInvalidLengthErrorConstruction(t *testing.T) {
	_, err := New(0)
	if err == nil {
		t.Fatal("expected error for n=0")
	}
	var ile *InvalidLengthError
	if !errors.As(err, &ile) {
		t.Fatalf("expected *InvalidLengthError, got %T: %v", err, err)
	}
	if ile.N != 0 {
		t.Errorf("N = %d, want 0", ile.N)
	}
}

func TestInvalidLengthErrorNegative(t *testing.T) {
	_, err := New(-5)
	if err == nil {
		t.Fatal("expected error for n=-5")
	}
}

func TestInvalidLengthErrorShortBuffer(t *testing.T) {
	p, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]float32, 10)
	err = p.RealForward(buf, 0)
	if err == nil {
		t.Fatal("expected error for short buffer")
	}
	var ile *InvalidLengthError
	if !errors.As(err, &ile) {
		t.Fatalf("expected *InvalidLengthError, got %T: %v", err, err)
	}
}

func TestInvalidLengthErrorNegativeOffset(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]float32, 4)
	if err := p.RealForward(buf, -1); err == nil {
		t.Fatal("expected error for negative offset")
	}
}

func TestTooLargeError(t *testing.T) {
	_, err := New(maxTransformLen + 1)
	if err == nil {
		t.Fatal("expected error for n exceeding maxTransformLen")
	}
	var tle *TooLargeError
	if !errors.As(err, &tle) {
		t.Fatalf("expected *TooLargeError, got %T: %v", err, err)
	}
}

func TestInternalErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	e := &InternalError{Err: inner}
	if !errors.Is(e, inner) {
		t.Fatal("InternalError should unwrap to its inner error")
	}
}

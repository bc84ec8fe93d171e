package validate

import "testing"

func TestRequired(t *testing.T) {
	if Required("student_id", "S1") != nil {
		t.Error("non-empty value flagged")
	}
	for _, v := range []string{"", "   "} {
		ef := Required("student_id", v)
		if ef == nil {
			t.Fatalf("blank value %q passed", v)
		}
		if ef.Field != "student_id" || ef.Msg != "required" {
			t.Fatalf("unexpected error field: %+v", ef)
		}
	}
}

func TestCollect(t *testing.T) {
	if err := Collect(nil, nil); err != nil {
		t.Fatalf("expected nil for all-passing checks, got %v", err)
	}

	err := Collect(
		Required("student_id", ""),
		Required("vendor_id", "V1"),
		Required("password", ""),
	)
	if err == nil {
		t.Fatal("expected aggregated error")
	}
	errs, ok := err.(Errs)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 failures, got %v", err)
	}
	if err.Error() != "student_id: required; password: required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

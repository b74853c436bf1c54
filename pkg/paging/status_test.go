package paging

import "testing"

func TestStatusString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusPaginating, "paginating"},
		{StatusCompleted, "completed"},
		{StatusExhausted, "exhausted"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Fatalf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusIdle, StatusPaginating, StatusCompleted, StatusExhausted} {
		if got := s.Completed(); got != (s == StatusCompleted) {
			t.Fatalf("%s.Completed() = %v", s, got)
		}
		if got := s.Exhausted(); got != (s == StatusExhausted) {
			t.Fatalf("%s.Exhausted() = %v", s, got)
		}
	}
}

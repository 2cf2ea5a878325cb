package services

import "testing"

func TestStopLabel(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
		-1:  "",
	}

	for in, want := range cases {
		if got := StopLabel(in); got != want {
			t.Errorf("StopLabel(%d) = %q, want %q", in, got, want)
		}
	}
}

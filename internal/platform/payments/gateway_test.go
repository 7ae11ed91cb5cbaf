package payments

import "testing"

func TestCentsFromPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{19.99, 1999},
		{0.1, 10},
		{29.995, 3000},
	}
	for _, tc := range cases {
		if got := CentsFromPrice(tc.price); got != tc.want {
			t.Errorf("CentsFromPrice(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

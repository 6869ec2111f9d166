package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Lucknow", "lucknow"},
		{"Uttar Pradesh", "uttar-pradesh"},
		{"Skin & Hair Care", "skin-hair-care"},
		{"  padded  ", "padded"},
		{"Already-Sluggy", "already-sluggy"},
		{"ENT (Ear, Nose, Throat)", "ent-ear-nose-throat"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package db

import "testing"

func TestSQLiteDSN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: "file::memory:?_foreign_keys=1"},
		{in: ":memory:", want: "file::memory:?_foreign_keys=1"},
		{in: "data/app.db", want: "file:data/app.db?_foreign_keys=1&_busy_timeout=5000"},
		{in: "file:x.db?mode=rw", want: "file:x.db?mode=rw&_foreign_keys=1&_busy_timeout=5000"},
	}
	for _, tc := range cases {
		if got := SQLiteDSN(tc.in); got != tc.want {
			t.Fatalf("SQLiteDSN(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

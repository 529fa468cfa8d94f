package app

import "testing"

func TestNormalizeRPCURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tcp scheme converted to http",
			in:   "tcp://localhost:26657",
			want: "http://localhost:26657",
		},
		{
			name: "already http",
			in:   "http://rpc.restake.zone:26657",
			want: "http://rpc.restake.zone:26657",
		},
		{
			name: "https preserved",
			in:   "https://rpc.restake.zone:443",
			want: "https://rpc.restake.zone:443",
		},
		{
			name: "blank input",
			in:   "   ",
			want: "",
		},
		{
			name: "unix scheme returned verbatim",
			in:   "unix:///tmp/restake.sock",
			want: "unix:///tmp/restake.sock",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeRPCURL(tc.in); got != tc.want {
				t.Fatalf("NormalizeRPCURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package app

import "testing"

func TestOriginHost(t *testing.T) {
	cases := []struct {
		origin string
		want   string
	}{
		{"https://www.tesahcapital.com", "www.tesahcapital.com"},
		{"http://localhost:3000", "localhost:3000"},
		{" https://admin.tesahcapital.com ", "admin.tesahcapital.com"},
		{"not a url", "not a url"},
	}
	for _, tc := range cases {
		if got := originHost(tc.origin); got != tc.want {
			t.Errorf("originHost(%q) = %q, want %q", tc.origin, got, tc.want)
		}
	}
}

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"tesahcapital.com", "*.tesahcapital.com", "localhost:3000"}

	allowed := []string{
		"tesahcapital.com",
		"www.tesahcapital.com",
		"admin.staging.tesahcapital.com",
		"TesahCapital.com",
		"localhost:3000",
	}
	for _, host := range allowed {
		if !originAllowed(patterns, host) {
			t.Errorf("host %q should be allowed", host)
		}
	}

	denied := []string{
		"eviltesahcapital.com",
		"tesahcapital.com.attacker.net",
		"localhost:9999",
		"",
	}
	for _, host := range denied {
		if originAllowed(patterns, host) {
			t.Errorf("host %q should be denied", host)
		}
	}
}

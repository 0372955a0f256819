package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SKLAD_API_URL", "")
	t.Setenv("SKLAD_TIMEOUT", "")
	t.Setenv("SKLAD_LOG", "")

	cfg := Load()
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKLAD_API_URL", "http://sklad.example:9000")
	t.Setenv("SKLAD_TIMEOUT", "30s")
	t.Setenv("SKLAD_LOG", "/tmp/sklad.log")

	cfg := Load()
	if cfg.APIURL != "http://sklad.example:9000" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.LogFile != "/tmp/sklad.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestTimeoutFormats(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"15", 15 * time.Second},
		{"2m", 2 * time.Minute},
		{"garbage", DefaultTimeout},
		{"-5", DefaultTimeout},
	}
	for _, c := range cases {
		t.Setenv("SKLAD_TIMEOUT", c.in)
		if got := Load().Timeout; got != c.want {
			t.Errorf("SKLAD_TIMEOUT=%q: Timeout = %v, want %v", c.in, got, c.want)
		}
	}
}

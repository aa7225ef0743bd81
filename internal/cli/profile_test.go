package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/punchtape/tapecut/pkg/errors"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), profilesFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyProfileFrom(t *testing.T) {
	path := writeProfiles(t, `
[profiles.teletype]
baudot = true
leader = 20
trailer = 20
vee = true

[profiles.archival]
level = 8
parity = "even"
chadless = true
gap = 7.5
`)

	opts := generateOpts{level: 0, leader: -1, trailer: -1}
	if err := applyProfileFrom(path, "teletype", &opts); err != nil {
		t.Fatalf("applyProfileFrom() error = %v", err)
	}
	if !opts.baudot || opts.leader != 20 || opts.trailer != 20 || !opts.vee {
		t.Errorf("teletype profile not applied: %+v", opts)
	}
	if opts.level != 0 {
		t.Errorf("level = %d, want untouched 0", opts.level)
	}

	opts = generateOpts{}
	if err := applyProfileFrom(path, "archival", &opts); err != nil {
		t.Fatalf("applyProfileFrom() error = %v", err)
	}
	if opts.level != 8 || opts.parity != "even" || !opts.chadless || opts.gap != 7.5 {
		t.Errorf("archival profile not applied: %+v", opts)
	}
}

func TestApplyProfileFromUnknownName(t *testing.T) {
	path := writeProfiles(t, "[profiles.known]\nlevel = 5\n")
	err := applyProfileFrom(path, "missing", &generateOpts{})
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error = %v, want INVALID_PROFILE", err)
	}
}

func TestApplyProfileFromMissingFile(t *testing.T) {
	err := applyProfileFrom(filepath.Join(t.TempDir(), "absent.toml"), "any", &generateOpts{})
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error = %v, want INVALID_PROFILE", err)
	}
}

func TestApplyProfileRejectsBadName(t *testing.T) {
	err := applyProfile("../escape", &generateOpts{})
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error = %v, want INVALID_PROFILE", err)
	}
}

func TestApplyProfileFromMalformedTOML(t *testing.T) {
	path := writeProfiles(t, "[profiles.broken\n")
	err := applyProfileFrom(path, "broken", &generateOpts{})
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error = %v, want INVALID_PROFILE", err)
	}
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/punchtape/tapecut/pkg/errors"
)

// profilesFileName is the TOML file holding named tape presets, looked up
// under the XDG config directory (~/.config/tapecut/profiles.toml).
const profilesFileName = "profiles.toml"

// profileFile is the on-disk shape of the profiles config.
//
//	[profiles.teletype]
//	baudot = true
//	leader = 20
//	trailer = 20
//	vee = true
type profileFile struct {
	Profiles map[string]profile `toml:"profiles"`
}

// profile is one named preset. Every field is optional; unset fields leave
// the flag values alone.
type profile struct {
	Level          *int     `toml:"level"`
	Sprocket       *int     `toml:"sprocket"`
	Baudot         *bool    `toml:"baudot"`
	Wheatstone     *bool    `toml:"wheatstone"`
	Cable          *bool    `toml:"cable"`
	Parity         *string  `toml:"parity"`
	Invert         *bool    `toml:"invert"`
	Mirror         *bool    `toml:"mirror"`
	Chadless       *bool    `toml:"chadless"`
	Leader         *int     `toml:"leader"`
	Trailer        *int     `toml:"trailer"`
	RowsPerSegment *int     `toml:"rows_per_segment"`
	Gap            *float64 `toml:"gap"`
	Vee            *bool    `toml:"vee"`
	Joiner         *bool    `toml:"joiner"`
}

// applyProfile loads the named profile and copies its set fields into opts.
// Profiles fill in where flags kept their defaults; an explicit flag on the
// command line should win, so callers apply profiles before reading flag
// overrides, or pass pre-merged opts.
func applyProfile(name string, opts *generateOpts) error {
	if err := errors.ValidateProfileName(name); err != nil {
		return err
	}
	dir, err := configDir()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProfile, err, "locating config directory")
	}
	return applyProfileFrom(filepath.Join(dir, profilesFileName), name, opts)
}

// applyProfileFrom is the path-explicit core of applyProfile, split out for
// tests.
func applyProfileFrom(path, name string, opts *generateOpts) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProfile, err, "reading %s", path)
	}
	var file profileFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProfile, err, "parsing %s", path)
	}
	p, ok := file.Profiles[name]
	if !ok {
		return errors.New(errors.ErrCodeInvalidProfile, "no profile %q in %s", name, path)
	}

	setInt(&opts.level, p.Level)
	setInt(&opts.sprocketPos, p.Sprocket)
	setBool(&opts.baudot, p.Baudot)
	setBool(&opts.wheatstone, p.Wheatstone)
	setBool(&opts.cable, p.Cable)
	setString(&opts.parity, p.Parity)
	setBool(&opts.invert, p.Invert)
	setBool(&opts.mirror, p.Mirror)
	setBool(&opts.chadless, p.Chadless)
	setInt(&opts.leader, p.Leader)
	setInt(&opts.trailer, p.Trailer)
	setInt(&opts.rowsPerSegment, p.RowsPerSegment)
	setFloat(&opts.gap, p.Gap)
	setBool(&opts.vee, p.Vee)
	setBool(&opts.joiner, p.Joiner)
	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

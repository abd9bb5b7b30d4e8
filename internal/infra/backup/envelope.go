// Package backup reads and writes the JSON export envelope that carries a
// player's save string and trophy map, and ranks players from envelopes.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/donjon-365/donjon/internal/domain"
	"github.com/donjon-365/donjon/internal/infra/savecodec"
)

// CurrentVersion is the envelope version Export writes.
const CurrentVersion = 2

// Envelope is the exported file. Version 1 files have no trophies.
type Envelope struct {
	Version  int              `json:"version"`
	Pseudo   string           `json:"pseudo"`
	Date     string           `json:"date"`
	SaveData string           `json:"save_data"`
	Trophies domain.UnlockMap `json:"trophies,omitempty"`
}

// rawEnvelope keeps save_data undecoded so a non-string value is caught.
type rawEnvelope struct {
	Version  int              `json:"version"`
	Pseudo   string           `json:"pseudo"`
	Date     string           `json:"date"`
	SaveData json.RawMessage  `json:"save_data"`
	Trophies domain.UnlockMap `json:"trophies"`
}

// New builds a current-version envelope dated at now (UTC).
func New(pseudo string, y domain.Year, trophies domain.UnlockMap, now time.Time) Envelope {
	return Envelope{
		Version:  CurrentVersion,
		Pseudo:   pseudo,
		Date:     now.UTC().Format(time.DateOnly),
		SaveData: savecodec.Encode(y),
		Trophies: trophies.Clone(),
	}
}

// FileName returns the download name for an export dated date.
func FileName(date string) string {
	return "365aventure-backup-" + date + ".json"
}

// Export writes env as indented JSON.
func Export(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// Parse reads an envelope and checks its shape and owner without decoding
// the save itself. An empty expectedPseudo accepts any owner; otherwise
// pseudos are compared case-insensitively. Version 1 files, and version 2
// files without trophies, yield an empty trophy map.
func Parse(r io.Reader, expectedPseudo string) (Envelope, error) {
	var raw rawEnvelope
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Envelope{}, fmt.Errorf("parse backup: %w", err)
	}
	if raw.Version != 1 && raw.Version != 2 {
		return Envelope{}, fmt.Errorf("version %d: %w", raw.Version, domain.ErrUnsupportedVersion)
	}

	var save string
	data := bytes.TrimSpace(raw.SaveData)
	if len(data) == 0 || data[0] != '"' {
		return Envelope{}, domain.ErrMissingSaveData
	}
	if err := json.Unmarshal(data, &save); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", domain.ErrMissingSaveData, err)
	}

	if expectedPseudo != "" && !strings.EqualFold(raw.Pseudo, expectedPseudo) {
		return Envelope{}, fmt.Errorf("backup of %q, expected %q: %w",
			raw.Pseudo, expectedPseudo, domain.ErrPseudoMismatch)
	}

	trophies := domain.UnlockMap{}
	if raw.Version >= 2 && raw.Trophies != nil {
		trophies = raw.Trophies
	}
	return Envelope{
		Version:  raw.Version,
		Pseudo:   raw.Pseudo,
		Date:     raw.Date,
		SaveData: save,
		Trophies: trophies,
	}, nil
}

// Import parses an envelope and decodes its save. Unlike a live restore,
// an undecodable or truncated save is an error here.
func Import(r io.Reader, expectedPseudo string) (Envelope, domain.Year, error) {
	env, err := Parse(r, expectedPseudo)
	if err != nil {
		return Envelope{}, domain.Year{}, err
	}
	if err := ValidateSave(env.SaveData); err != nil {
		return Envelope{}, domain.Year{}, fmt.Errorf("save_data: %w", err)
	}
	y, err := savecodec.DecodeStrict(env.SaveData)
	if err != nil {
		return Envelope{}, domain.Year{}, fmt.Errorf("decode save_data: %w", err)
	}
	return env, y, nil
}

// ReadFile imports the envelope stored at path.
func ReadFile(path, expectedPseudo string) (Envelope, domain.Year, error) {
	f, err := os.Open(path)
	if err != nil {
		return Envelope{}, domain.Year{}, err
	}
	defer f.Close()
	return Import(f, expectedPseudo)
}

// ParseFile parses the envelope stored at path without decoding its save.
func ParseFile(path, expectedPseudo string) (Envelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return Envelope{}, err
	}
	defer f.Close()
	return Parse(f, expectedPseudo)
}

// WriteFile stores env at path, creating parent directories. The file is
// written to a sibling temp file first and renamed into place.
func WriteFile(path string, env Envelope) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".backup-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Export(tmp, env); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ValidateSave accepts an empty string as "no progress yet"; any other
// save must decode and carry at least one bit per calendar day.
func ValidateSave(s string) error {
	if s == "" {
		return nil
	}
	bits, err := savecodec.BitLen(s)
	if err != nil {
		return err
	}
	if bits < domain.DaysInYear {
		return fmt.Errorf("%d bits: %w", bits, domain.ErrShortSave)
	}
	return nil
}

// Package savecodec packs the mutable state of a Year into a compact
// base64 string and back.
//
// Bit layout, in order: one bit per day (global order), one bit per mana
// slot (month order), then one bit per month for staff[0], cape[0],
// ring[0], staff[1], cape[1], ring[1]. Bits are packed LSB-first into
// bytes and the bytes are encoded as standard base64. Whitespace and
// missing padding are tolerated on input.
//
// Decoding reads the groups in the same order and defaults every flag to
// false once the stream runs out, so saves written before a group existed
// still decode.
package savecodec

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/domain"
)

// Encode serializes the completion and usage flags of y.
func Encode(y domain.Year) string {
	var w bitWriter
	for _, m := range y.Months {
		for _, d := range m.Days {
			w.put(d.Completed)
		}
	}
	for _, m := range y.Months {
		for _, used := range m.ManaUsed {
			w.put(used)
		}
	}
	for _, slot := range []int{0, 1} {
		for _, it := range domain.Items {
			for _, m := range y.Months {
				w.put(m.ItemUsed(it)[slot])
			}
		}
	}
	return base64.StdEncoding.EncodeToString(w.bytes())
}

// Decode rebuilds a Year from a save string on top of a fresh calendar.
// The bool is false only for empty input or malformed base64; callers then
// fall back to a fresh Year.
func Decode(s string) (domain.Year, bool) {
	y, err := DecodeStrict(s)
	if err != nil {
		return domain.Year{}, false
	}
	return y, true
}

// DecodeStrict is Decode with the failure reason.
func DecodeStrict(s string) (domain.Year, error) {
	return DecodeWith(calendar.Default(), s)
}

// DecodeWith decodes against an explicit calendar.
func DecodeWith(tpl calendar.Templates, s string) (domain.Year, error) {
	if s == "" {
		return domain.Year{}, domain.ErrEmptySave
	}
	raw, err := decodeBase64(s)
	if err != nil {
		return domain.Year{}, err
	}
	if len(raw) == 0 {
		return domain.Year{}, domain.ErrEmptySave
	}

	y := tpl.Generate()
	r := bitReader{buf: raw}

	for mi := range y.Months {
		days := y.Months[mi].Days
		for di := range days {
			days[di].Completed = r.next()
		}
	}
	for mi := range y.Months {
		used := y.Months[mi].ManaUsed
		for si := range used {
			used[si] = r.next()
		}
	}
	for _, slot := range []int{0, 1} {
		for _, it := range domain.Items {
			for mi := range y.Months {
				y.Months[mi].SetItemUsed(it, slot, r.next())
			}
		}
	}
	return y, nil
}

// BitLen returns the number of bits a save string carries, or an error
// when it cannot be decoded at all.
func BitLen(s string) (int, error) {
	if s == "" {
		return 0, domain.ErrEmptySave
	}
	raw, err := decodeBase64(s)
	if err != nil {
		return 0, err
	}
	return len(raw) * 8, nil
}

// decodeBase64 drops whitespace and reads unpadded input with the raw
// alphabet.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	enc := base64.StdEncoding
	if len(s)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	raw, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSave, err)
	}
	return raw, nil
}

// LayoutBits returns the number of logical bits Encode writes for y.
func LayoutBits(y domain.Year) int {
	n := 0
	for _, m := range y.Months {
		n += len(m.Days) + len(m.ManaUsed)
	}
	return n + 6*len(y.Months)
}

// ─── Bit packing ────────────────────────────────────────────────────────────

type bitWriter struct {
	buf []byte
	n   int
}

func (w *bitWriter) put(bit bool) {
	if w.n%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit {
		w.buf[w.n/8] |= 1 << (w.n % 8)
	}
	w.n++
}

func (w *bitWriter) bytes() []byte { return w.buf }

type bitReader struct {
	buf []byte
	n   int
}

// next returns the next bit, or false once the stream is exhausted.
func (r *bitReader) next() bool {
	if r.n >= len(r.buf)*8 {
		return false
	}
	bit := r.buf[r.n/8]>>(r.n%8)&1 == 1
	r.n++
	return bit
}

package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors carry no infrastructure dependency.

var (
	// Save errors
	ErrEmptySave   = errors.New("save string is empty")
	ErrInvalidSave = errors.New("save string is not valid base64")
	ErrShortSave   = errors.New("save string holds fewer bits than the calendar has days")

	// Toggle errors
	ErrDayOutOfRange   = errors.New("day coordinates out of range")
	ErrSlotOutOfRange  = errors.New("mana slot out of range")
	ErrManaNotEarned   = errors.New("mana potion not earned yet")
	ErrUnknownItem     = errors.New("unknown item")
	ErrItemUnavailable = errors.New("item slot not available this month")

	// Trophy and estimator errors
	ErrUnknownTrophy = errors.New("unknown trophy")
	ErrInvalidRate   = errors.New("completion rate must be in (0, 1]")

	// Backup envelope errors
	ErrUnsupportedVersion = errors.New("backup version must be 1 or 2")
	ErrMissingSaveData    = errors.New("backup has no save_data string")
	ErrPseudoMismatch     = errors.New("backup belongs to another player")
)

package booking

import (
	"fmt"
	"strconv"
	"strings"
)

type Origin string

const (
	OriginRegular Origin = "BK"
	OriginPackage Origin = "PK"
)

const displayIDDigits = 6

// ParseOrigin accepts the tag or the origin name in any case.
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bk", "regular":
		return OriginRegular, nil
	case "pk", "package":
		return OriginPackage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrigin, s)
	}
}

func (o Origin) Name() string {
	switch o {
	case OriginRegular:
		return "regular"
	case OriginPackage:
		return "package"
	default:
		return "unknown"
	}
}

func (o Origin) rank() int {
	if o == OriginRegular {
		return 0
	}
	return 1
}

// CompositeKey is the only globally unique reservation identity.
// LocalID alone is ambiguous across origins.
type CompositeKey struct {
	Origin  Origin
	LocalID int64
}

func (k CompositeKey) String() string {
	return fmt.Sprintf("%s_%d", k.Origin, k.LocalID)
}

func (k CompositeKey) DisplayID() string {
	return fmt.Sprintf("%s-%0*d", k.Origin, displayIDDigits, k.LocalID)
}

func (k CompositeKey) IsZero() bool {
	return k.Origin == "" && k.LocalID == 0
}

func ParseDisplayID(s string) (CompositeKey, error) {
	tag, digits, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || len(digits) < displayIDDigits {
		return CompositeKey{}, fmt.Errorf("%w: %q", ErrInvalidDisplayID, s)
	}
	origin := Origin(strings.ToUpper(tag))
	if origin != OriginRegular && origin != OriginPackage {
		return CompositeKey{}, fmt.Errorf("%w: %q", ErrInvalidDisplayID, s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return CompositeKey{}, fmt.Errorf("%w: %q", ErrInvalidDisplayID, s)
		}
	}
	id, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || id <= 0 {
		return CompositeKey{}, fmt.Errorf("%w: %q", ErrInvalidDisplayID, s)
	}
	return CompositeKey{Origin: origin, LocalID: id}, nil
}

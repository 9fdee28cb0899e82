package options

// ModeEnum selects how the integer and fractional parts of a numeral are spelled.
type ModeEnum int

const (
	ModePlain ModeEnum = iota // 壹拾点贰伍
	ModeMoney                 // 壹拾元贰角伍分, 壹佰元整
)

func (m ModeEnum) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeMoney:
		return "money"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of ModeEnum.String.
func ParseMode(s string) (ModeEnum, bool) {
	switch s {
	case "plain", "":
		return ModePlain, true
	case "money":
		return ModeMoney, true
	default:
		return ModePlain, false
	}
}

package validity

import (
	"math/big"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var (
	// Dot-atom or quoted-string local part, dot-atom or domain-literal domain.
	emailAtom      = `[^\x00-\x20\x22\x28\x29\x2c\x2e\x3a-\x3c\x3e\x40\x5b-\x5d\x7f-\xff]+`
	emailQuoted    = `\x22(?:[^\x0d\x22\x5c\x80-\xff]|\x5c[\x00-\x7f])*\x22`
	emailLiteral   = `\x5b(?:[^\x0d\x5b-\x5d\x80-\xff]|\x5c[\x00-\x7f])*\x5d`
	emailWord      = `(?:` + emailAtom + `|` + emailQuoted + `)`
	emailSubDomain = `(?:` + emailAtom + `|` + emailLiteral + `)`

	emailRegex = regexp.MustCompile(`^` + emailWord + `(?:\x2e` + emailWord + `)*\x40` +
		emailSubDomain + `(?:\x2e` + emailSubDomain + `)*$`)

	// Scheme, optional userinfo, host (captured), optional port and path.
	urlLabel = `(?:[a-zA-Z\x{00a1}-\x{ffff}0-9]-*)*[a-zA-Z\x{00a1}-\x{ffff}0-9]+`
	urlRegex = regexp.MustCompile(`^(?:(?:https?|HTTPS?|ftp|FTP)://)(?:\S+(?::\S*)?@)?(` +
		urlLabel + `(?:\.` + urlLabel + `)*)(?::\d{2,5})?(?:[/?#]\S*)?$`)

	numberRegex = regexp.MustCompile(`^[-+]?(?:\d+|\d*[.,]\d+)$`)
	floatRegex  = regexp.MustCompile(`^-?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][-+]?\d+)?$`)

	// IPv4 ranges a URL host may not point at.
	reservedPrefixes = []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("127.0.0.0/8"),
		netip.MustParsePrefix("169.254.0.0/16"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("192.168.0.0/16"),
	}
)

// IsEmail reports whether value matches the email grammar.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsURL reports whether value is an absolute http(s)/ftp URL whose host is
// not a private or loopback IPv4 address.
func IsURL(value string) bool {
	m := urlRegex.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	if addr, err := netip.ParseAddr(m[1]); err == nil && addr.Is4() {
		for _, p := range reservedPrefixes {
			if p.Contains(addr) {
				return false
			}
		}
	}
	return true
}

// IsNumber reports whether value is a numeric literal: optional sign, digits,
// optional decimal separator ("." or ",").
func IsNumber(value string) bool {
	return numberRegex.MatchString(value)
}

// ParseNumber parses a control value into an exact rational. Commas are
// accepted as decimal separators, as they are by IsNumber.
func ParseNumber(value string) (*big.Rat, bool) {
	s := strings.TrimSpace(value)
	if !numberRegex.MatchString(s) {
		return nil, false
	}
	return parseDecimal(strings.Replace(s, ",", ".", 1))
}

// ParseFloat parses a min, max or step attribute with the HTML floating-point
// number grammar. Anything else, such as "+1", "0x10" or "1_0", is not a
// number and yields false.
func ParseFloat(value string) (*big.Rat, bool) {
	s := strings.TrimSpace(value)
	if !floatRegex.MatchString(s) {
		return nil, false
	}
	return parseDecimal(s)
}

// parseDecimal expects s to be checked against one of the number grammars.
func parseDecimal(s string) (*big.Rat, bool) {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false
	}
	if neg {
		r.Neg(r)
	}
	return r, true
}

// Length returns the value length in UTF-16 code units, which is how the DOM
// counts value.length for minlength and maxlength.
func Length(value string) int {
	n := 0
	for _, r := range value {
		n += utf16.RuneLen(r)
	}
	return n
}

// parseLength parses a minlength/maxlength attribute. Only positive integers
// are usable bounds.
func parseLength(a Attr) (int, bool) {
	if !a.Present {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(a.Value))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

var one = big.NewRat(1, 1)

// parseStep returns the step to check against and false when stepping is
// disabled ("any"). Missing, unparseable and non-positive steps fall back
// to 1.
func parseStep(a Attr) (*big.Rat, bool) {
	if !a.Present {
		return one, true
	}
	v := strings.TrimSpace(a.Value)
	if strings.EqualFold(v, "any") {
		return nil, false
	}
	step, ok := ParseFloat(v)
	if !ok || step.Sign() <= 0 {
		return one, true
	}
	return step, true
}

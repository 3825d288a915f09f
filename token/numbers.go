package token

// number scans a numeric literal at the start of d, returning its length
// and whether it is a float.  Leading zeros are accepted; a decimal point
// needs digits on at least one side.
func number(d []byte) (int, bool, error) {
	i := sign(d)
	digits := asciiDigits(d[i:])
	f := fract(d[i+digits:], digits > 0)
	if digits+f == 0 || (digits == 0 && f == 1) {
		return 0, false, ErrNumber
	}
	i += digits
	e := exp(d[i+f:])
	if f+e == 0 {
		return i, false, nil
	}
	return i + f + e, true, nil
}

func sign(d []byte) int {
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		return 1
	}
	return 0
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract scans '.' and the digits after it.  With no leading digits at
// least one digit must follow the point.
func fract(d []byte, lead bool) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 && !lead {
		return 1
	}
	return n + 1
}

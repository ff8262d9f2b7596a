package interpolate

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	headerPrefix = "Cubic spline. Length:"
	lineIndent   = "        "
)

var (
	numberPattern = regexp.MustCompile(`[-+]?\d*\.\d+|\d+`)
	headerPattern = regexp.MustCompile(`^Cubic spline\. Length:\s*(\d+)`)
)

// String returns the spline in the same layout used by WriteText.
func (sp *CubicSpline) String() string {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.format()
}

// GoString returns a representation of the spline which lists all of its
// sequences at full precision.
func (sp *CubicSpline) GoString() string {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return fmt.Sprintf("CubicSpline(%v, %v, %v)", sp.xs, sp.ys, sp.ms)
}

func (sp *CubicSpline) format() string {
	verb := fmt.Sprintf("%%%d.%df", sp.width, sp.precision)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%s %4d", headerPrefix, len(sp.xs))
	for _, line := range []struct {
		label string
		vals  []float64
	}{{xKey, sp.xs}, {yKey, sp.ys}, {mKey, sp.ms}} {
		fmt.Fprintf(sb, "\n%s%s: ", lineIndent, line.label)
		for _, v := range line.vals {
			// Values wider than the field would run into their neighbors.
			s := fmt.Sprintf(verb, v)
			if !strings.HasPrefix(s, " ") {
				sb.WriteByte(' ')
			}
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// WriteText writes the spline to w in the text format:
//
//	Cubic spline. Length: <N>
//	        xlist: <x0> <x1> ... <xN-1>
//	        ylist: <y0> <y1> ... <yN-1>
//	        Mlist: <m0> <m1> ... <mN-1>
func (sp *CubicSpline) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, sp.String()+"\n")
	return err
}

// ReadText replaces the spline's knots with the contents of a text-format
// spline read from r. The header length must match the number of values on
// each of the following three lines.
func (sp *CubicSpline) ReadText(r io.Reader) error {
	rec, err := parseText(r)
	if err != nil {
		return err
	}
	return sp.SetRecord(rec)
}

func parseText(r io.Reader) (Record, error) {
	lines := make([]string, 0, 4)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<30)
	for len(lines) < 4 && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Record{}, err
	}
	if len(lines) < 4 {
		return Record{}, fmt.Errorf(
			"%w: expected 4 lines, found %d", ErrMalformedFile, len(lines),
		)
	}

	header := headerPattern.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if header == nil {
		return Record{}, fmt.Errorf(
			"%w: invalid header '%s'", ErrMalformedFile, lines[0],
		)
	}
	n, err := strconv.Atoi(header[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s", ErrMalformedFile, err)
	}

	rec := Record{}
	for i, field := range []struct {
		label string
		out   *[]float64
	}{{xKey, &rec.X}, {yKey, &rec.Y}, {mKey, &rec.M}} {
		line := strings.TrimSpace(lines[i+1])
		if !strings.HasPrefix(line, field.label+":") {
			return Record{}, fmt.Errorf(
				"%w: line %d should start with '%s:'",
				ErrMalformedFile, i+2, field.label,
			)
		}

		xs, err := parseNumbers(line[len(field.label)+1:])
		if err != nil {
			return Record{}, err
		}
		if len(xs) != n {
			return Record{}, fmt.Errorf(
				"%w: header length is %d, but %s has %d values",
				ErrMalformedFile, n, field.label, len(xs),
			)
		}
		*field.out = xs
	}

	return rec, nil
}

func parseNumbers(s string) ([]float64, error) {
	tokens := numberPattern.FindAllString(s, -1)
	xs := make([]float64, len(tokens))
	for i, tok := range tokens {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedFile, err)
		}
		xs[i] = x
	}
	return xs, nil
}

package renderer

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// ppmTriplesPerLine keeps lines of 0..255 values under 70 characters
const ppmTriplesPerLine = 5

// WritePPM encodes the canvas as a plain (P3) PPM image
func WritePPM(w io.Writer, c *Canvas) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("P3\n")
	bw.WriteString(strconv.Itoa(c.Width()) + " " + strconv.Itoa(c.Height()) + "\n")
	bw.WriteString("255\n")

	line := make([]byte, 0, 72)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if x > 0 && x%ppmTriplesPerLine == 0 {
				line = append(line, '\n')
				bw.Write(line)
				line = line[:0]
			} else if x > 0 {
				line = append(line, ' ')
			}
			r, g, b := quantize(c.PixelAt(x, y))
			line = strconv.AppendUint(line, uint64(r), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(g), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(b), 10)
		}
		line = append(line, '\n')
		bw.Write(line)
		line = line[:0]
	}

	if err := bw.Flush(); err != nil {
		return xerrors.Errorf("while writing PPM: %w", err)
	}
	return nil
}

// ToPPM returns the PPM encoding of the canvas as a string
func ToPPM(c *Canvas) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = WritePPM(&sb, c)
	return sb.String()
}

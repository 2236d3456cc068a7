// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
)

const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// Fprint writes m to w: values formatted with %g, space-separated, one row
// per line, and a blank line after the last row. Intended for debugging.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opPrint, err)
	}
	if d, ok := m.(*Dense); ok {
		return fprintDense(w, d)
	}

	buf := make([]byte, 0, 32)
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		buf = buf[:0]
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opPrint, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if j > 0 {
				buf = append(buf, _fmtSep...)
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, _fmtRowClose...)
		if _, err = w.Write(buf); err != nil {
			return matrixErrorf(opPrint, err)
		}
	}
	if _, err = io.WriteString(w, _fmtRowClose); err != nil {
		return matrixErrorf(opPrint, err)
	}

	return nil
}

// fprintDense is the flat-buffer path of Fprint.
func fprintDense(w io.Writer, d *Dense) error {
	buf := make([]byte, 0, 16*d.c)
	var i int
	for i = 0; i < d.r; i++ {
		buf = buf[:0]
		for j, v := range d.row(i) {
			if j > 0 {
				buf = append(buf, _fmtSep...)
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, _fmtRowClose...)
		if _, err := w.Write(buf); err != nil {
			return matrixErrorf(opPrint, err)
		}
	}
	if _, err := io.WriteString(w, _fmtRowClose); err != nil {
		return matrixErrorf(opPrint, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
)

// FolderName encodes the run parameters the way the research tool names its
// output folders, e.g. INF10000_EPS0.05_DELTA0.1_ITER50_TOL0.0001_NBETA2.
func FolderName(p diffusion.Params) string {
	var b strings.Builder
	b.WriteString("INF")
	b.WriteString(formatCount(p.Inf))
	b.WriteString("_EPS")
	b.WriteString(FormatFloat(p.Epsilon))
	b.WriteString("_DELTA")
	b.WriteString(FormatFloat(p.Delta))
	b.WriteString("_ITER")
	b.WriteString(strconv.Itoa(p.MaxIter))
	b.WriteString("_TOL")
	b.WriteString(FormatFloat(p.Tol))
	b.WriteString("_NBETA")
	b.WriteString(strconv.Itoa(p.Anchors))

	return b.String()
}

// Folder joins root and FolderName(p).
func Folder(root string, p diffusion.Params) string {
	return filepath.Join(root, FolderName(p))
}

// FormatFloat renders v as the shortest decimal that round-trips, switching to
// exponent notation below 1e-4 and from 1e16 up (0.05, 0.0001, 1e-05, 1e+16).
// Integral values keep a trailing ".0".
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case v == 0:
		return "0.0"
	case abs < 1e-4 || abs >= 1e16:
		return strconv.FormatFloat(v, 'e', -1, 64)
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// formatCount renders integral values without a fractional part (INF10000).
func formatCount(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return FormatFloat(v)
}

// CSVName maps an input file name onto its result file name (net.txt → net.csv).
func CSVName(input string) string {
	base := filepath.Base(input)

	return strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"
}

package backend

import "math"

// DashPolyline splits the polyline pts into the "on" pieces of pattern,
// measured by arc length from the first point. The pattern alternates on
// and off lengths starting with "on"; an odd-length pattern is repeated
// once to make it even. A pattern that is empty or has a non-positive
// entry yields pts unchanged as a single piece.
func DashPolyline(pts []Point, pattern []float64) [][]Point {
	if len(pts) < 2 {
		return nil
	}
	if !validPattern(pattern) {
		return [][]Point{pts}
	}

	pat := pattern
	if len(pat)%2 != 0 {
		pat = make([]float64, 0, 2*len(pattern))
		pat = append(pat, pattern...)
		pat = append(pat, pattern...)
	}

	var (
		out    [][]Point
		cur    = []Point{pts[0]}
		on     = true
		idx    = 0
		remain = pat[0]
	)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			t := pos / segLen
			p := Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pat)
			remain = pat[idx]
		}
		remain -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

func validPattern(pattern []float64) bool {
	if len(pattern) == 0 {
		return false
	}
	for _, l := range pattern {
		if !(l > 0) || math.IsInf(l, 0) {
			return false
		}
	}
	return true
}

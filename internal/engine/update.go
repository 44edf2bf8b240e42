// update.go - staggered leapfrog field updates and boundary damping

package engine

// coefficient is the single fixed demonstration coefficient used by every
// update below. It is not CFL-derived.
const coefficient = 0.5

// UpdateHx advances the Hx plane. Valid for rows 0..Height-2; the bottom
// row is left untouched (it has no Ez[x,y+1] neighbor).
func UpdateHx(w, h int, ez, hx []float64) {
	for y := 0; y <= h-2; y++ {
		for x := 0; x <= w-1; x++ {
			idx := y*w + x
			idxUp := (y+1)*w + x
			hx[idx] -= coefficient * (ez[idxUp] - ez[idx])
		}
	}
}

// UpdateHy advances the Hy plane. Valid for columns 0..Width-2; the right
// column is left untouched (it has no Ez[x+1,y] neighbor).
func UpdateHy(w, h int, ez, hy []float64) {
	for y := 0; y <= h-1; y++ {
		for x := 0; x <= w-2; x++ {
			idx := y*w + x
			idxRight := y*w + (x + 1)
			hy[idx] += coefficient * (ez[idxRight] - ez[idx])
		}
	}
}

// UpdateEz advances the interior of the Ez plane, forcing PEC cells to
// zero. The outermost ring is left for the boundary stage.
func UpdateEz(w, h int, ez, hx, hy, material []float64) {
	for y := 1; y <= h-2; y++ {
		for x := 1; x <= w-2; x++ {
			idx := y*w + x
			if material[idx] > 0 {
				ez[idx] = 0
				continue
			}
			idxLeft := y*w + (x - 1)
			idxDown := (y-1)*w + x
			dhy := hy[idx] - hy[idxLeft]
			dhx := hx[idx] - hx[idxDown]
			ez[idx] += coefficient * (dhy - dhx)
		}
	}
}

// boundaryDepth returns min(20, dim/2) for a boundary run of length dim.
func boundaryDepth(dim int) int {
	d := dim / 2
	if d > 20 {
		d = 20
	}
	return d
}

// ApplyBoundaries damps all three field planes toward zero in a graded
// band along all four edges. Cells at the outer rim (i=0) are fully
// zeroed; cells at the inner edge of the band (i=D-1) are nearly
// unaffected.
func ApplyBoundaries(w, h int, ez, hx, hy []float64) {
	applyLeftRight(w, h, ez, hx, hy)
	applyTopBottom(w, h, ez, hx, hy)
}

func applyLeftRight(w, h int, ez, hx, hy []float64) {
	d := boundaryDepth(w)
	if d <= 0 {
		return
	}
	for i := 0; i < d; i++ {
		factor := sq(float64(i) / float64(d))
		right := w - 1 - i
		for y := 0; y < h; y++ {
			left := y*w + i
			ez[left] *= factor
			hx[left] *= factor
			hy[left] *= factor

			r := y*w + right
			ez[r] *= factor
			hx[r] *= factor
			hy[r] *= factor
		}
	}
}

func applyTopBottom(w, h int, ez, hx, hy []float64) {
	d := boundaryDepth(h)
	if d <= 0 {
		return
	}
	for i := 0; i < d; i++ {
		factor := sq(float64(i) / float64(d))
		bottom := h - 1 - i
		for x := 0; x < w; x++ {
			top := i*w + x
			ez[top] *= factor
			hx[top] *= factor
			hy[top] *= factor

			b := bottom*w + x
			ez[b] *= factor
			hx[b] *= factor
			hy[b] *= factor
		}
	}
}

func sq(v float64) float64 { return v * v }

package dft

import "math"

// mixedRadixTable holds the real-transform twiddle/factor table described
// in spec.md §3 as wtable_r: a flat float32 buffer of length 2n+15, with
// [0,n) unused by the real kernels, [n,2n) holding cos/sin twiddle pairs,
// and [2n,2n+15) holding the (n, factor_count, factors...) tuple.
//
// The twiddle-table construction and the radf2..radf5/radfg kernels below
// are a direct, float32 port of Swarztrauber's FFTPACK real-transform
// routines as preserved in Gonum's dsp/fourier package (see
// _examples/other_examples/a92ac766_gonum-gonum__fourier-rfft.go.go);
// the 2/3/4/5-rotation, ido/l1/ip/idl1 naming, and the ar1/ai1 Goertzel
// recurrence in radfg all follow that source line for line, translated
// from 1-based Fortran-style double arrays to float32 with an explicit
// base-offset helper in place of Gonum's oneArray/threeArray wrappers.
type mixedRadixTable struct {
	n       int
	factors []int
	data    []float32
}

func buildMixedRadixTable(n int) *mixedRadixTable {
	t := &mixedRadixTable{n: n, factors: factorizeMixedRadix(n)}
	t.data = make([]float32, 2*n+15)
	nf := len(t.factors)
	t.data[2*n] = float32(n)
	t.data[2*n+1] = float32(nf)
	for i, f := range t.factors {
		t.data[2*n+2+i] = float32(f)
	}
	if nf == 1 {
		return t
	}

	argh := 2 * math.Pi / float64(n)
	iw := n
	l1 := 1
	for k1 := 0; k1 < nf-1; k1++ {
		ip := t.factors[k1]
		l2 := l1 * ip
		ido := n / l2
		ld := 0
		for j := 0; j < ip-1; j++ {
			ld += l1
			i := iw
			argld := float64(ld) * argh
			fi := 0.0
			for ii := 2; ii < ido; ii += 2 {
				fi++
				s, c := math.Sincos(fi * argld)
				t.data[i] = float32(c)
				t.data[i+1] = float32(s)
				i += 2
			}
			iw += ido
		}
		l1 = l2
	}
	return t
}

// wa is a 1-based view of the twiddle table starting at absolute index
// base; wa.at(i) == data[base+i-1]. This mirrors spec.md §9's "1-based
// indexing convention" note without introducing a heavier array
// abstraction than the kernels need.
type wa struct {
	data []float32
	base int
}

func (w wa) at(i int) float32 { return w.data[w.base+i-1] }

// array3 is a 1-based (d1 x d2 x d3) view over a flat float32 buffer,
// matching the indexing FFTPACK's radf*/radfg kernels use for cc/ch/c1/c2.
type array3 struct {
	d1, d2 int
	data   []float32
}

func (a array3) at(i, j, k int) float32    { return a.data[(k-1)*a.d1*a.d2+(j-1)*a.d1+(i-1)] }
func (a array3) set(i, j, k int, v float32) { a.data[(k-1)*a.d1*a.d2+(j-1)*a.d1+(i-1)] = v }

// array2 is a 1-based (d1 x d2) view, used for the (idl1 x ip) c2/ch2
// buffers in radfg.
type array2 struct {
	d1   int
	data []float32
}

func (a array2) at(i, j int) float32    { return a.data[(j-1)*a.d1+(i-1)] }
func (a array2) set(i, j int, v float32) { a.data[(j-1)*a.d1+(i-1)] = v }

// mixedRadixRealForward runs spec.md §4.3's pass loop: ipll from the tail
// of the twiddle table dispatches to the radix 2/3/4/5 kernels or the
// general-radix pass, alternating source/destination between buf[offset:]
// and the scratch ch via the na ping-pong bit, then reorders the result
// into the packed half-spectrum layout.
func mixedRadixRealForward(n int, buf []float32, offset int, t *mixedRadixTable, ch []float32) {
	if n == 1 {
		return
	}
	nf := len(t.factors)
	c := buf[offset : offset+n]
	na := 1
	l2 := n
	// The passes consume n-1 twiddle slots in total, walking down from the
	// top of [n, 2n) so the first factor's twiddles start at index n.
	iw := 2*n - 1

	for k1 := 1; k1 <= nf; k1++ {
		kh := nf - k1
		ip := t.factors[kh]
		l1 := l2 / ip
		ido := n / l2
		idl1 := ido * l1
		iw -= (ip - 1) * ido
		na = 1 - na

		switch ip {
		case 4:
			ix2, ix3 := iw+ido, iw+2*ido
			if na == 0 {
				radf4(ido, l1, c, ch, wa{t.data, iw}, wa{t.data, ix2}, wa{t.data, ix3})
			} else {
				radf4(ido, l1, ch, c, wa{t.data, iw}, wa{t.data, ix2}, wa{t.data, ix3})
			}
		case 2:
			if na == 0 {
				radf2(ido, l1, c, ch, wa{t.data, iw})
			} else {
				radf2(ido, l1, ch, c, wa{t.data, iw})
			}
		case 3:
			ix2 := iw + ido
			if na == 0 {
				radf3(ido, l1, c, ch, wa{t.data, iw}, wa{t.data, ix2})
			} else {
				radf3(ido, l1, ch, c, wa{t.data, iw}, wa{t.data, ix2})
			}
		case 5:
			ix2, ix3, ix4 := iw+ido, iw+2*ido, iw+3*ido
			if na == 0 {
				radf5(ido, l1, c, ch, wa{t.data, iw}, wa{t.data, ix2}, wa{t.data, ix3}, wa{t.data, ix4})
			} else {
				radf5(ido, l1, ch, c, wa{t.data, iw}, wa{t.data, ix2}, wa{t.data, ix3}, wa{t.data, ix4})
			}
		default:
			if ido == 1 {
				na = 1 - na
			}
			if na == 0 {
				radfg(ido, ip, l1, idl1, c, c, c, ch, ch, wa{t.data, iw})
				na = 1
			} else {
				radfg(ido, ip, l1, idl1, ch, ch, ch, c, c, wa{t.data, iw})
				na = 0
			}
		}
		l2 = l1
	}

	if na != 1 {
		copy(c, ch[:n])
	}

	// Move from the internal FFTPACK-style layout (DC, then (Re,Im) pairs
	// starting at index 1, with the even-length Nyquist real value last)
	// to spec.md §6's packed half-spectrum (DC and Nyquist/high-imag
	// sharing the first two slots).
	for k := n - 1; k >= 2; k-- {
		c[k], c[k-1] = c[k-1], c[k]
	}
}

func radf2(ido, l1 int, cc, ch []float32, wa1 wa) {
	cc3 := array3{ido, l1, cc}
	ch3 := array3{ido, 2, ch}

	for k := 1; k <= l1; k++ {
		ch3.set(1, 1, k, cc3.at(1, k, 1)+cc3.at(1, k, 2))
		ch3.set(ido, 2, k, cc3.at(1, k, 1)-cc3.at(1, k, 2))
	}
	if ido < 2 {
		return
	}
	if ido > 2 {
		idp2 := ido + 2
		for k := 1; k <= l1; k++ {
			for i := 3; i <= ido; i += 2 {
				ic := idp2 - i
				tr2 := wa1.at(i-2)*cc3.at(i-1, k, 2) + wa1.at(i-1)*cc3.at(i, k, 2)
				ti2 := wa1.at(i-2)*cc3.at(i, k, 2) - wa1.at(i-1)*cc3.at(i-1, k, 2)
				ch3.set(i, 1, k, cc3.at(i, k, 1)+ti2)
				ch3.set(ic, 2, k, ti2-cc3.at(i, k, 1))
				ch3.set(i-1, 1, k, cc3.at(i-1, k, 1)+tr2)
				ch3.set(ic-1, 2, k, cc3.at(i-1, k, 1)-tr2)
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	for k := 1; k <= l1; k++ {
		ch3.set(1, 2, k, -cc3.at(ido, k, 2))
		ch3.set(ido, 1, k, cc3.at(ido, k, 1))
	}
}

func radf3(ido, l1 int, cc, ch []float32, wa1, wa2 wa) {
	const (
		taur = -0.5
		taui = 0.866025403784439
	)

	cc3 := array3{ido, l1, cc}
	ch3 := array3{ido, 3, ch}

	for k := 1; k <= l1; k++ {
		cr2 := cc3.at(1, k, 2) + cc3.at(1, k, 3)
		ch3.set(1, 1, k, cc3.at(1, k, 1)+cr2)
		ch3.set(1, 3, k, taui*(cc3.at(1, k, 3)-cc3.at(1, k, 2)))
		ch3.set(ido, 2, k, cc3.at(1, k, 1)+taur*cr2)
	}
	if ido < 2 {
		return
	}
	idp2 := ido + 2
	for k := 1; k <= l1; k++ {
		for i := 3; i <= ido; i += 2 {
			ic := idp2 - i
			dr2 := wa1.at(i-2)*cc3.at(i-1, k, 2) + wa1.at(i-1)*cc3.at(i, k, 2)
			di2 := wa1.at(i-2)*cc3.at(i, k, 2) - wa1.at(i-1)*cc3.at(i-1, k, 2)
			dr3 := wa2.at(i-2)*cc3.at(i-1, k, 3) + wa2.at(i-1)*cc3.at(i, k, 3)
			di3 := wa2.at(i-2)*cc3.at(i, k, 3) - wa2.at(i-1)*cc3.at(i-1, k, 3)
			cr2 := dr2 + dr3
			ci2 := di2 + di3
			ch3.set(i-1, 1, k, cc3.at(i-1, k, 1)+cr2)
			ch3.set(i, 1, k, cc3.at(i, k, 1)+ci2)
			tr2 := cc3.at(i-1, k, 1) + taur*cr2
			ti2 := cc3.at(i, k, 1) + taur*ci2
			tr3 := taui * (di2 - di3)
			ti3 := taui * (dr3 - dr2)
			ch3.set(i-1, 3, k, tr2+tr3)
			ch3.set(ic-1, 2, k, tr2-tr3)
			ch3.set(i, 3, k, ti2+ti3)
			ch3.set(ic, 2, k, ti3-ti2)
		}
	}
}

func radf4(ido, l1 int, cc, ch []float32, wa1, wa2, wa3 wa) {
	const hsqt2 = float32(math.Sqrt2 / 2)

	cc3 := array3{ido, l1, cc}
	ch3 := array3{ido, 4, ch}

	for k := 1; k <= l1; k++ {
		tr1 := cc3.at(1, k, 2) + cc3.at(1, k, 4)
		tr2 := cc3.at(1, k, 1) + cc3.at(1, k, 3)
		ch3.set(1, 1, k, tr1+tr2)
		ch3.set(ido, 4, k, tr2-tr1)
		ch3.set(ido, 2, k, cc3.at(1, k, 1)-cc3.at(1, k, 3))
		ch3.set(1, 3, k, cc3.at(1, k, 4)-cc3.at(1, k, 2))
	}
	if ido < 2 {
		return
	}
	if ido > 2 {
		idp2 := ido + 2
		for k := 1; k <= l1; k++ {
			for i := 3; i <= ido; i += 2 {
				ic := idp2 - i
				cr2 := wa1.at(i-2)*cc3.at(i-1, k, 2) + wa1.at(i-1)*cc3.at(i, k, 2)
				ci2 := wa1.at(i-2)*cc3.at(i, k, 2) - wa1.at(i-1)*cc3.at(i-1, k, 2)
				cr3 := wa2.at(i-2)*cc3.at(i-1, k, 3) + wa2.at(i-1)*cc3.at(i, k, 3)
				ci3 := wa2.at(i-2)*cc3.at(i, k, 3) - wa2.at(i-1)*cc3.at(i-1, k, 3)
				cr4 := wa3.at(i-2)*cc3.at(i-1, k, 4) + wa3.at(i-1)*cc3.at(i, k, 4)
				ci4 := wa3.at(i-2)*cc3.at(i, k, 4) - wa3.at(i-1)*cc3.at(i-1, k, 4)
				tr1 := cr2 + cr4
				tr4 := cr4 - cr2
				ti1 := ci2 + ci4
				ti4 := ci2 - ci4
				ti2 := cc3.at(i, k, 1) + ci3
				ti3 := cc3.at(i, k, 1) - ci3
				tr2 := cc3.at(i-1, k, 1) + cr3
				tr3 := cc3.at(i-1, k, 1) - cr3
				ch3.set(i-1, 1, k, tr1+tr2)
				ch3.set(ic-1, 4, k, tr2-tr1)
				ch3.set(i, 1, k, ti1+ti2)
				ch3.set(ic, 4, k, ti1-ti2)
				ch3.set(i-1, 3, k, ti4+tr3)
				ch3.set(ic-1, 2, k, tr3-ti4)
				ch3.set(i, 3, k, tr4+ti3)
				ch3.set(ic, 2, k, tr4-ti3)
			}
		}
		if ido%2 == 1 {
			return
		}
	}
	for k := 1; k <= l1; k++ {
		ti1 := -hsqt2 * (cc3.at(ido, k, 2) + cc3.at(ido, k, 4))
		tr1 := hsqt2 * (cc3.at(ido, k, 2) - cc3.at(ido, k, 4))
		ch3.set(ido, 1, k, tr1+cc3.at(ido, k, 1))
		ch3.set(ido, 3, k, cc3.at(ido, k, 1)-tr1)
		ch3.set(1, 2, k, ti1-cc3.at(ido, k, 3))
		ch3.set(1, 4, k, ti1+cc3.at(ido, k, 3))
	}
}

func radf5(ido, l1 int, cc, ch []float32, wa1, wa2, wa3, wa4 wa) {
	const (
		tr11 = 0.309016994374947
		ti11 = 0.951056516295154
		tr12 = -0.809016994374947
		ti12 = 0.587785252292473
	)

	cc3 := array3{ido, l1, cc}
	ch3 := array3{ido, 5, ch}

	for k := 1; k <= l1; k++ {
		cr2 := cc3.at(1, k, 5) + cc3.at(1, k, 2)
		ci5 := cc3.at(1, k, 5) - cc3.at(1, k, 2)
		cr3 := cc3.at(1, k, 4) + cc3.at(1, k, 3)
		ci4 := cc3.at(1, k, 4) - cc3.at(1, k, 3)
		ch3.set(1, 1, k, cc3.at(1, k, 1)+cr2+cr3)
		ch3.set(ido, 2, k, cc3.at(1, k, 1)+tr11*cr2+tr12*cr3)
		ch3.set(1, 3, k, ti11*ci5+ti12*ci4)
		ch3.set(ido, 4, k, cc3.at(1, k, 1)+tr12*cr2+tr11*cr3)
		ch3.set(1, 5, k, ti12*ci5-ti11*ci4)
	}
	if ido < 2 {
		return
	}
	idp2 := ido + 2
	for k := 1; k <= l1; k++ {
		for i := 3; i <= ido; i += 2 {
			ic := idp2 - i
			dr2 := wa1.at(i-2)*cc3.at(i-1, k, 2) + wa1.at(i-1)*cc3.at(i, k, 2)
			di2 := wa1.at(i-2)*cc3.at(i, k, 2) - wa1.at(i-1)*cc3.at(i-1, k, 2)
			dr3 := wa2.at(i-2)*cc3.at(i-1, k, 3) + wa2.at(i-1)*cc3.at(i, k, 3)
			di3 := wa2.at(i-2)*cc3.at(i, k, 3) - wa2.at(i-1)*cc3.at(i-1, k, 3)
			dr4 := wa3.at(i-2)*cc3.at(i-1, k, 4) + wa3.at(i-1)*cc3.at(i, k, 4)
			di4 := wa3.at(i-2)*cc3.at(i, k, 4) - wa3.at(i-1)*cc3.at(i-1, k, 4)
			dr5 := wa4.at(i-2)*cc3.at(i-1, k, 5) + wa4.at(i-1)*cc3.at(i, k, 5)
			di5 := wa4.at(i-2)*cc3.at(i, k, 5) - wa4.at(i-1)*cc3.at(i-1, k, 5)
			cr2 := dr2 + dr5
			ci5 := dr5 - dr2
			cr5 := di2 - di5
			ci2 := di2 + di5
			cr3 := dr3 + dr4
			ci4 := dr4 - dr3
			cr4 := di3 - di4
			ci3 := di3 + di4
			ch3.set(i-1, 1, k, cc3.at(i-1, k, 1)+cr2+cr3)
			ch3.set(i, 1, k, cc3.at(i, k, 1)+ci2+ci3)
			tr2 := cc3.at(i-1, k, 1) + tr11*cr2 + tr12*cr3
			ti2 := cc3.at(i, k, 1) + tr11*ci2 + tr12*ci3
			tr3 := cc3.at(i-1, k, 1) + tr12*cr2 + tr11*cr3
			ti3 := cc3.at(i, k, 1) + tr12*ci2 + tr11*ci3
			tr5 := ti11*cr5 + ti12*cr4
			ti5 := ti11*ci5 + ti12*ci4
			tr4 := ti12*cr5 - ti11*cr4
			ti4 := ti12*ci5 - ti11*ci4
			ch3.set(i-1, 3, k, tr2+tr5)
			ch3.set(ic-1, 2, k, tr2-tr5)
			ch3.set(i, 3, k, ti2+ti5)
			ch3.set(ic, 2, k, ti5-ti2)
			ch3.set(i-1, 5, k, tr3+tr4)
			ch3.set(ic-1, 4, k, tr3-tr4)
			ch3.set(i, 5, k, ti3+ti4)
			ch3.set(ic, 4, k, ti4-ti3)
		}
	}
}

// radfg is the general-radix forward pass, used for any factor other
// than 2, 3, 4 and 5, which always go to the specialized radices above
// (so p = 7, 11, 13, ...). Its cost is O(p^2) per call,
// which is exactly why classify() routes large remaining factors to
// Bluestein instead.
func radfg(ido, ip, l1, idl1 int, cc, c1, c2, ch, ch2 []float32, wa wa) {
	cc3 := array3{ido, ip, cc}
	c13 := array3{ido, l1, c1}
	ch3 := array3{ido, l1, ch}
	c2m := array2{idl1, c2}
	ch2m := array2{idl1, ch2}

	arg := 2 * math.Pi / float64(ip)
	dcp := float32(math.Cos(arg))
	dsp := float32(math.Sin(arg))
	ipph := (ip + 1) / 2
	ipp2 := ip + 2
	idp2 := ido + 2
	nbd := (ido - 1) / 2

	if ido == 1 {
		for ik := 1; ik <= idl1; ik++ {
			c2m.set(ik, 1, ch2m.at(ik, 1))
		}
	} else {
		for ik := 1; ik <= idl1; ik++ {
			ch2m.set(ik, 1, c2m.at(ik, 1))
		}
		for j := 2; j <= ip; j++ {
			for k := 1; k <= l1; k++ {
				ch3.set(1, k, j, c13.at(1, k, j))
			}
		}

		is := -ido
		if nbd > l1 {
			for j := 2; j <= ip; j++ {
				is += ido
				for k := 1; k <= l1; k++ {
					idij := is
					for i := 3; i <= ido; i += 2 {
						idij += 2
						ch3.set(i-1, k, j, wa.at(idij-1)*c13.at(i-1, k, j)+wa.at(idij)*c13.at(i, k, j))
						ch3.set(i, k, j, wa.at(idij-1)*c13.at(i, k, j)-wa.at(idij)*c13.at(i-1, k, j))
					}
				}
			}
		} else {
			for j := 2; j <= ip; j++ {
				is += ido
				idij := is
				for i := 3; i <= ido; i += 2 {
					idij += 2
					for k := 1; k <= l1; k++ {
						ch3.set(i-1, k, j, wa.at(idij-1)*c13.at(i-1, k, j)+wa.at(idij)*c13.at(i, k, j))
						ch3.set(i, k, j, wa.at(idij-1)*c13.at(i, k, j)-wa.at(idij)*c13.at(i-1, k, j))
					}
				}
			}
		}
		if nbd < l1 {
			for j := 2; j <= ipph; j++ {
				jc := ipp2 - j
				for i := 3; i <= ido; i += 2 {
					for k := 1; k <= l1; k++ {
						c13.set(i-1, k, j, ch3.at(i-1, k, j)+ch3.at(i-1, k, jc))
						c13.set(i-1, k, jc, ch3.at(i, k, j)-ch3.at(i, k, jc))
						c13.set(i, k, j, ch3.at(i, k, j)+ch3.at(i, k, jc))
						c13.set(i, k, jc, ch3.at(i-1, k, jc)-ch3.at(i-1, k, j))
					}
				}
			}
		} else {
			for j := 2; j <= ipph; j++ {
				jc := ipp2 - j
				for k := 1; k <= l1; k++ {
					for i := 3; i <= ido; i += 2 {
						c13.set(i-1, k, j, ch3.at(i-1, k, j)+ch3.at(i-1, k, jc))
						c13.set(i-1, k, jc, ch3.at(i, k, j)-ch3.at(i, k, jc))
						c13.set(i, k, j, ch3.at(i, k, j)+ch3.at(i, k, jc))
						c13.set(i, k, jc, ch3.at(i-1, k, jc)-ch3.at(i-1, k, j))
					}
				}
			}
		}
	}

	for j := 2; j <= ipph; j++ {
		jc := ipp2 - j
		for k := 1; k <= l1; k++ {
			c13.set(1, k, j, ch3.at(1, k, j)+ch3.at(1, k, jc))
			c13.set(1, k, jc, ch3.at(1, k, jc)-ch3.at(1, k, j))
		}
	}

	ar1, ai1 := float32(1), float32(0)
	for l := 2; l <= ipph; l++ {
		lc := ipp2 - l
		ar1h := dcp*ar1 - dsp*ai1
		ai1 = dcp*ai1 + dsp*ar1
		ar1 = ar1h
		for ik := 1; ik <= idl1; ik++ {
			ch2m.set(ik, l, c2m.at(ik, 1)+ar1*c2m.at(ik, 2))
			ch2m.set(ik, lc, ai1*c2m.at(ik, ip))
		}
		dc2, ds2 := ar1, ai1
		ar2, ai2 := ar1, ai1
		for j := 3; j <= ipph; j++ {
			jc := ipp2 - j
			ar2h := dc2*ar2 - ds2*ai2
			ai2 = dc2*ai2 + ds2*ar2
			ar2 = ar2h
			for ik := 1; ik <= idl1; ik++ {
				ch2m.set(ik, l, ch2m.at(ik, l)+ar2*c2m.at(ik, j))
				ch2m.set(ik, lc, ch2m.at(ik, lc)+ai2*c2m.at(ik, jc))
			}
		}
	}
	for j := 2; j <= ipph; j++ {
		for ik := 1; ik <= idl1; ik++ {
			ch2m.set(ik, 1, ch2m.at(ik, 1)+c2m.at(ik, j))
		}
	}

	if ido < l1 {
		for i := 1; i <= ido; i++ {
			for k := 1; k <= l1; k++ {
				cc3.set(i, 1, k, ch3.at(i, k, 1))
			}
		}
	} else {
		for k := 1; k <= l1; k++ {
			for i := 1; i <= ido; i++ {
				cc3.set(i, 1, k, ch3.at(i, k, 1))
			}
		}
	}
	for j := 2; j <= ipph; j++ {
		jc := ipp2 - j
		j2 := 2 * j
		for k := 1; k <= l1; k++ {
			cc3.set(ido, j2-2, k, ch3.at(1, k, j))
			cc3.set(1, j2-1, k, ch3.at(1, k, jc))
		}
	}

	if ido == 1 {
		return
	}
	if nbd < l1 {
		for j := 2; j <= ipph; j++ {
			jc := ipp2 - j
			j2 := 2 * j
			for i := 3; i <= ido; i += 2 {
				ic := idp2 - i
				for k := 1; k <= l1; k++ {
					cc3.set(i-1, j2-1, k, ch3.at(i-1, k, j)+ch3.at(i-1, k, jc))
					cc3.set(ic-1, j2-2, k, ch3.at(i-1, k, j)-ch3.at(i-1, k, jc))
					cc3.set(i, j2-1, k, ch3.at(i, k, j)+ch3.at(i, k, jc))
					cc3.set(ic, j2-2, k, ch3.at(i, k, jc)-ch3.at(i, k, j))
				}
			}
		}
		return
	}
	for j := 2; j <= ipph; j++ {
		jc := ipp2 - j
		j2 := 2 * j
		for k := 1; k <= l1; k++ {
			for i := 3; i <= ido; i += 2 {
				ic := idp2 - i
				cc3.set(i-1, j2-1, k, ch3.at(i-1, k, j)+ch3.at(i-1, k, jc))
				cc3.set(ic-1, j2-2, k, ch3.at(i-1, k, j)-ch3.at(i-1, k, jc))
				cc3.set(i, j2-1, k, ch3.at(i, k, j)+ch3.at(i, k, jc))
				cc3.set(ic, j2-2, k, ch3.at(i, k, jc)-ch3.at(i, k, j))
			}
		}
	}
}

package chalk

import "testing"

func TestCellSpecsUniformHeight(t *testing.T) {
	specs := ComputeCellSpecs([]string{"5", "100", "y", `"`}, testFont(), 32, CellConstraints{})
	m := metricsFor(testFont(), 32)
	for i, s := range specs {
		if s.Height != m.cellH {
			t.Fatalf("spec %d height %v, want %v", i, s.Height, m.cellH)
		}
		assertTrue(t, s.Width >= s.Height, "cell narrower than tall")
	}
}

func TestCellSpecsWidthGrowsWithContent(t *testing.T) {
	specs := ComputeCellSpecs([]string{"1", "1000000"}, testFont(), 32, CellConstraints{})
	assertTrue(t, specs[1].Width > specs[0].Width, "wide content should widen its cell")

	m := metricsFor(testFont(), 32)
	w, _ := testFont().MeasureString("1000000", 32)
	assertClose(t, specs[1].Width, m.pad*2.5+w)
}

func TestCellSpecsSquareConstraint(t *testing.T) {
	specs := ComputeCellSpecs([]string{"w"}, testFont(), 32, CellConstraints{Square: true})
	assertClose(t, specs[0].Width, specs[0].Height)
}

func TestCellSpecsVerticalAlignment(t *testing.T) {
	m := metricsFor(testFont(), 32)
	_, h := testFont().MeasureString("x", 32)

	cases := []struct {
		text string
		dy   float64
	}{
		{"7", (m.cellH - h) / 2},      // digits center
		{"-42", (m.cellH - h) / 2},    // numeric strings center
		{`"`, m.topBuff},              // quotes hug the top
		{"y", m.cellH - h - m.deepBuff}, // descenders sit deep
		{"a", m.cellH - h - m.bottomBuff},
	}
	for _, c := range cases {
		spec := ComputeCellSpecs([]string{c.text}, testFont(), 32, CellConstraints{})[0]
		if spec.TextDY != c.dy {
			t.Fatalf("%q: dy %v, want %v", c.text, spec.TextDY, c.dy)
		}
	}
}

func TestCellSpecsTextCentered(t *testing.T) {
	spec := ComputeCellSpecs([]string{"ab"}, testFont(), 32, CellConstraints{})[0]
	assertClose(t, spec.TextDX, (spec.Width-spec.TextW)/2)
}

func TestCellSpecsAlignLeft(t *testing.T) {
	m := metricsFor(testFont(), 32)
	spec := ComputeCellSpecs([]string{"ab"}, testFont(), 32, CellConstraints{AlignLeft: true})[0]
	assertClose(t, spec.TextDX, m.pad*1.25)
}

func TestCellSpecsEmptyPlaceholder(t *testing.T) {
	specs := ComputeCellSpecs(nil, testFont(), 32, CellConstraints{})
	assertEqual(t, len(specs), 1)
	assertTrue(t, specs[0].Width > 0, "placeholder must have extent")

	quoted := ComputeCellSpecs(nil, testFont(), 32, CellConstraints{EmptyLiteral: `""`})
	assertEqual(t, len(quoted), 1)
}

func TestCellSpecsDeterministic(t *testing.T) {
	a := ComputeCellSpecs([]string{"3", "14", "15"}, testFont(), 32, CellConstraints{})
	b := ComputeCellSpecs([]string{"3", "14", "15"}, testFont(), 32, CellConstraints{})
	for i := range a {
		assertEqual(t, a[i], b[i])
	}
}

func TestAlignClassification(t *testing.T) {
	cases := []struct {
		text string
		want alignClass
	}{
		{"0", alignCenter},
		{"-3.5", alignCenter},
		{"[]", alignCenter},
		{"a/b", alignCenter}, // any bracketing glyph forces center
		{`"`, alignTop},
		{"'", alignTop},
		{"y", alignDeepBottom},
		{"gg", alignDeepBottom},
		{"abc", alignBottom},
		{"", alignCenter},
	}
	for _, c := range cases {
		if got := alignFor(c.text); got != c.want {
			t.Fatalf("alignFor(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestNodeSpecsFitRadius(t *testing.T) {
	specs := ComputeNodeSpecs([]string{"7", "1234567890"}, testFont(), 28)
	for i, s := range specs {
		assertClose(t, s.Width, 56)
		assertClose(t, s.Height, 56)
		if s.TextW > 56 {
			t.Fatalf("spec %d: label wider than node", i)
		}
	}
	assertTrue(t, specs[1].FontSize < specs[0].FontSize, "long label should shrink")
}

func TestNodeSpecsCenterShortLabels(t *testing.T) {
	spec := ComputeNodeSpecs([]string{"42"}, testFont(), 28)[0]
	assertClose(t, spec.TextDX, -spec.TextW/2)
	assertClose(t, spec.TextDY, -spec.TextH/2)
}
